package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"filmgraph/internal/httputil"
	"filmgraph/internal/model"
	"filmgraph/internal/service"
)

type FilmHandler struct {
	films *service.FilmService
	log   *slog.Logger
}

func NewFilmHandler(films *service.FilmService, log *slog.Logger) *FilmHandler {
	return &FilmHandler{
		films: films,
		log:   log,
	}
}

func (h *FilmHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateFilmRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	film, err := h.films.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, film)
}

func (h *FilmHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateFilmRequest
	if err := decodeJSON(r, &req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	film, err := h.films.Update(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, film)
}

func (h *FilmHandler) List(w http.ResponseWriter, r *http.Request) {
	films, err := h.films.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if films == nil {
		films = []model.Film{}
	}

	httputil.WriteJSON(w, http.StatusOK, films)
}

func (h *FilmHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid film ID")
		return
	}

	film, err := h.films.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, film)
}

func (h *FilmHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid film ID")
		return
	}
	userID, ok := idParam(r, "userId")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	if err := h.films.AddLike(r.Context(), filmID, userID); err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Like added",
	})
}

func (h *FilmHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid film ID")
		return
	}
	userID, ok := idParam(r, "userId")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid user ID")
		return
	}

	if err := h.films.RemoveLike(r.Context(), filmID, userID); err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Like removed",
	})
}

func (h *FilmHandler) Popular(w http.ResponseWriter, r *http.Request) {
	count := service.DefaultPopularCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteBadRequest(w, "count must be a positive integer")
			return
		}
		count = parsed
	}

	films, err := h.films.Popular(r.Context(), count)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, films)
}
