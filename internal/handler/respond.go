package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"filmgraph/internal/httputil"
	"filmgraph/internal/model"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// validation failures to 400, unresolved references to 404, everything else
// to a logged 500 with a generic message.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		httputil.WriteValidationError(w, ve.Fields)
	case errors.Is(err, model.ErrSelfFriendship):
		httputil.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrValidation):
		httputil.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrFilmNotFound),
		errors.Is(err, model.ErrGenreNotFound),
		errors.Is(err, model.ErrMpaNotFound):
		httputil.WriteNotFound(w, err.Error())
	default:
		log.Error("request failed", "error", err)
		httputil.WriteInternalError(w, "Something went wrong. Please try again later.")
	}
}

// idParam parses a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
