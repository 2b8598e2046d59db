package handler

import (
	"log/slog"
	"net/http"

	"filmgraph/internal/httputil"
	"filmgraph/internal/model"
	"filmgraph/internal/service"
)

type GenreHandler struct {
	genres *service.GenreService
	log    *slog.Logger
}

func NewGenreHandler(genres *service.GenreService, log *slog.Logger) *GenreHandler {
	return &GenreHandler{genres: genres, log: log}
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.genres.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if genres == nil {
		genres = []model.Genre{}
	}

	httputil.WriteJSON(w, http.StatusOK, genres)
}

func (h *GenreHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid genre ID")
		return
	}

	genre, err := h.genres.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, genre)
}

type MpaHandler struct {
	mpa *service.MpaService
	log *slog.Logger
}

func NewMpaHandler(mpa *service.MpaService, log *slog.Logger) *MpaHandler {
	return &MpaHandler{mpa: mpa, log: log}
}

func (h *MpaHandler) List(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.mpa.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	if ratings == nil {
		ratings = []model.Mpa{}
	}

	httputil.WriteJSON(w, http.StatusOK, ratings)
}

func (h *MpaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		httputil.WriteBadRequest(w, "Invalid mpa ID")
		return
	}

	rating, err := h.mpa.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, rating)
}
