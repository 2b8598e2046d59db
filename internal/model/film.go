package model

import "errors"

// Mpa is a row of the MPA rating reference table (e.g. "PG-13").
type Mpa struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

// Genre is a row of the genre reference table.
type Genre struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Film is a catalog entry. Genres keep their insertion order with duplicates
// collapsed. LikedBy is a read-time snapshot derived from the like index;
// mutating it has no effect on stored state.
type Film struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	ReleaseDate Date    `db:"release_date" json:"release_date"`
	Duration    int     `db:"duration" json:"duration"`
	Mpa         Mpa     `json:"mpa"`
	Genres      []Genre `json:"genres"`
	LikedBy     []int64 `json:"liked_by"`
}

// CreateFilmRequest is the payload for POST /films. The release date floor
// is enforced in the service, not by a struct tag.
type CreateFilmRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"max=200"`
	ReleaseDate Date    `json:"release_date"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	MpaID       int64   `json:"mpa_id" validate:"required,gt=0"`
	GenreIDs    []int64 `json:"genre_ids" validate:"omitempty,dive,gt=0"`
}

// UpdateFilmRequest is the payload for PUT /films; the target id is embedded.
type UpdateFilmRequest struct {
	ID          int64   `json:"id" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"max=200"`
	ReleaseDate Date    `json:"release_date"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	MpaID       int64   `json:"mpa_id" validate:"required,gt=0"`
	GenreIDs    []int64 `json:"genre_ids" validate:"omitempty,dive,gt=0"`
}

var (
	// ErrFilmNotFound is returned when a film id does not resolve.
	ErrFilmNotFound = errors.New("film not found")

	// ErrGenreNotFound is returned for an unknown genre reference.
	ErrGenreNotFound = errors.New("genre not found")

	// ErrMpaNotFound is returned for an unknown MPA rating reference.
	ErrMpaNotFound = errors.New("mpa rating not found")
)
