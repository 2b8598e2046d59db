package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"filmgraph/internal/handler"
	"filmgraph/internal/httputil"
)

// RouterConfig holds the dependencies needed to create routes.
type RouterConfig struct {
	UserHandler  *handler.UserHandler
	FilmHandler  *handler.FilmHandler
	GenreHandler *handler.GenreHandler
	MpaHandler   *handler.MpaHandler
	Middleware   []func(http.Handler) http.Handler
}

// NewRouter creates and configures a new Chi router with all route groups.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	for _, mw := range cfg.Middleware {
		r.Use(mw)
	}

	// Health check endpoint (useful for deployment/monitoring)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", cfg.UserHandler.List)
		r.Post("/", cfg.UserHandler.Create)
		r.Put("/", cfg.UserHandler.Update)
		r.Get("/{id}", cfg.UserHandler.GetByID)
		r.Get("/{id}/friends", cfg.UserHandler.Friends)
		r.Get("/{id}/friends/common/{otherId}", cfg.UserHandler.CommonFriends)
		r.Put("/{id}/friends/{friendId}", cfg.UserHandler.AddFriend)
		r.Delete("/{id}/friends/{friendId}", cfg.UserHandler.RemoveFriend)
	})

	r.Route("/films", func(r chi.Router) {
		r.Get("/", cfg.FilmHandler.List)
		r.Post("/", cfg.FilmHandler.Create)
		r.Put("/", cfg.FilmHandler.Update)
		r.Get("/popular", cfg.FilmHandler.Popular)
		r.Get("/{id}", cfg.FilmHandler.GetByID)
		r.Put("/{id}/like/{userId}", cfg.FilmHandler.AddLike)
		r.Delete("/{id}/like/{userId}", cfg.FilmHandler.RemoveLike)
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", cfg.GenreHandler.List)
		r.Get("/{id}", cfg.GenreHandler.GetByID)
	})

	r.Route("/mpa", func(r chi.Router) {
		r.Get("/", cfg.MpaHandler.List)
		r.Get("/{id}", cfg.MpaHandler.GetByID)
	})

	return r
}
