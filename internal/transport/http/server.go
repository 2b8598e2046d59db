package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"filmgraph/internal/config"
	"filmgraph/internal/database"
	"filmgraph/internal/handler"
	"filmgraph/internal/repository"
	"filmgraph/internal/service"
	"filmgraph/internal/validation"
)

// Run wires configuration, storage, services and handlers together and
// serves until SIGINT/SIGTERM, then shuts down gracefully.
func Run(log *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("database connection established", "host", cfg.DBHost, "name", cfg.DBName)

	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendshipRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	mpaRepo := repository.NewMpaRepository(db)

	validate := validation.New()

	userService := service.NewUserService(userRepo, validate, log)
	friendService := service.NewFriendshipService(friendRepo, userRepo, log)
	filmService := service.NewFilmService(filmRepo, likeRepo, userRepo, genreRepo, mpaRepo, validate, log)
	genreService := service.NewGenreService(genreRepo)
	mpaService := service.NewMpaService(mpaRepo)

	router := NewRouter(RouterConfig{
		UserHandler:  handler.NewUserHandler(userService, friendService, log),
		FilmHandler:  handler.NewFilmHandler(filmService, log),
		GenreHandler: handler.NewGenreHandler(genreService, log),
		MpaHandler:   handler.NewMpaHandler(mpaService, log),
		Middleware:   []func(stdhttp.Handler) stdhttp.Handler{RequestLogger(log)},
	})

	server := stdhttp.Server{
		Addr:         net.JoinHostPort("", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	shutdownErr := make(chan error)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		log.Info("shutting down the server", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(ctx)
	}()

	log.Info("starting server", "addr", server.Addr)
	if err := server.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
