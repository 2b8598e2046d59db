package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"filmgraph/internal/model"
)

var filmColumns = []string{"id", "name", "description", "release_date", "duration", "mpa_id", "mpa_name", "mpa_description"}

func TestFilmRepositoryGetByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFilmRepository(db)

	released := time.Date(1896, 1, 6, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE f.id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(filmColumns).
			AddRow(int64(1), "Arrival of a Train", "Fifty seconds of a train.", released, 1, int64(2), "PG", nil))

	mock.ExpectQuery(regexp.QuoteMeta("FROM film_genres fg")).
		WithArgs(pq.Array([]int64{1})).
		WillReturnRows(sqlmock.NewRows([]string{"film_id", "id", "name"}).
			AddRow(int64(1), int64(2), "Drama").
			AddRow(int64(1), int64(1), "Comedy"))

	film, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Arrival of a Train", film.Name)
	require.Equal(t, int64(2), film.Mpa.ID)
	require.Equal(t, "PG", film.Mpa.Name)
	require.Nil(t, film.Mpa.Description)

	// Genre order follows the stored position, not genre id.
	require.Len(t, film.Genres, 2)
	require.Equal(t, int64(2), film.Genres[0].ID)
	require.Equal(t, int64(1), film.Genres[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilmRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFilmRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE f.id = $1")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, model.ErrFilmNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilmRepositoryListPopular(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFilmRepository(db)

	released := time.Date(1980, 5, 21, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY COUNT(l.user_id) DESC, f.id")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(filmColumns).
			AddRow(int64(2), "Second Film", "", released, 90, int64(1), "G", nil).
			AddRow(int64(1), "First Film", "", released, 100, int64(1), "G", nil))

	mock.ExpectQuery(regexp.QuoteMeta("FROM film_genres fg")).
		WithArgs(pq.Array([]int64{2, 1})).
		WillReturnRows(sqlmock.NewRows([]string{"film_id", "id", "name"}))

	films, err := repo.ListPopular(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, films, 2)
	require.Equal(t, int64(2), films[0].ID)
	require.Equal(t, int64(1), films[1].ID)
	require.NotNil(t, films[0].Genres)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilmRepositoryUpdateNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFilmRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE films")).
		WithArgs("Ghost Film", "", sqlmock.AnyArg(), 90, int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	film := &model.Film{
		ID:          42,
		Name:        "Ghost Film",
		ReleaseDate: model.NewDate(1980, 5, 21),
		Duration:    90,
		Mpa:         model.Mpa{ID: 1},
	}

	err := repo.Update(context.Background(), film, nil)
	require.ErrorIs(t, err, model.ErrFilmNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilmRepositoryExists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFilmRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM films WHERE id = $1)")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
