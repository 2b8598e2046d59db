package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"filmgraph/internal/model"
)

// filmRepository implements FilmRepository using sqlx. Writes that touch the
// film row and its genre associations run inside a single transaction so a
// concurrent reader never observes a half-updated film.
type filmRepository struct {
	db *sqlx.DB
}

func NewFilmRepository(db *sqlx.DB) FilmRepository {
	return &filmRepository{db: db}
}

const selectFilm = `
	SELECT f.id, f.name, f.description, f.release_date, f.duration,
	       m.id AS mpa_id, m.name AS mpa_name, m.description AS mpa_description
	FROM films f
	JOIN mpa_ratings m ON m.id = f.mpa_id
`

// filmRow flattens the film + MPA join for scanning.
type filmRow struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	ReleaseDate model.Date `db:"release_date"`
	Duration    int        `db:"duration"`
	MpaID       int64      `db:"mpa_id"`
	MpaName     string     `db:"mpa_name"`
	MpaDesc     *string    `db:"mpa_description"`
}

func (row filmRow) toFilm() model.Film {
	return model.Film{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		ReleaseDate: row.ReleaseDate,
		Duration:    row.Duration,
		Mpa: model.Mpa{
			ID:          row.MpaID,
			Name:        row.MpaName,
			Description: row.MpaDesc,
		},
		Genres:  []model.Genre{},
		LikedBy: []int64{},
	}
}

func (r *filmRepository) Create(ctx context.Context, f *model.Film, genreIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO films (name, description, release_date, duration, mpa_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	row := tx.QueryRowxContext(ctx, query, f.Name, f.Description, f.ReleaseDate, f.Duration, f.Mpa.ID)
	if err := row.Scan(&f.ID); err != nil {
		return fmt.Errorf("failed to insert film: %w", err)
	}

	if err := insertGenres(ctx, tx, f.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return r.reload(ctx, f)
}

func (r *filmRepository) Update(ctx context.Context, f *model.Film, genreIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE films
		SET name = $1, description = $2, release_date = $3, duration = $4, mpa_id = $5
		WHERE id = $6
	`
	result, err := tx.ExecContext(ctx, query, f.Name, f.Description, f.ReleaseDate, f.Duration, f.Mpa.ID, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update film: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrFilmNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM film_genres WHERE film_id = $1`, f.ID); err != nil {
		return fmt.Errorf("failed to clear film genres: %w", err)
	}
	if err := insertGenres(ctx, tx, f.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return r.reload(ctx, f)
}

func (r *filmRepository) GetByID(ctx context.Context, id int64) (*model.Film, error) {
	var row filmRow
	err := r.db.GetContext(ctx, &row, selectFilm+`WHERE f.id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrFilmNotFound
		}
		return nil, fmt.Errorf("failed to get film by id: %w", err)
	}

	film := row.toFilm()
	if err := r.attachGenres(ctx, []*model.Film{&film}); err != nil {
		return nil, err
	}

	return &film, nil
}

func (r *filmRepository) List(ctx context.Context) ([]model.Film, error) {
	return r.selectFilms(ctx, selectFilm+`ORDER BY f.id`)
}

func (r *filmRepository) ListPopular(ctx context.Context, limit int) ([]model.Film, error) {
	query := `
		SELECT f.id, f.name, f.description, f.release_date, f.duration,
		       m.id AS mpa_id, m.name AS mpa_name, m.description AS mpa_description
		FROM films f
		JOIN mpa_ratings m ON m.id = f.mpa_id
		LEFT JOIN film_likes l ON l.film_id = f.id
		GROUP BY f.id, m.id
		ORDER BY COUNT(l.user_id) DESC, f.id
		LIMIT $1
	`
	return r.selectFilms(ctx, query, limit)
}

func (r *filmRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM films WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("failed to check film existence: %w", err)
	}

	return exists, nil
}

func (r *filmRepository) selectFilms(ctx context.Context, query string, args ...any) ([]model.Film, error) {
	var rows []filmRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select films: %w", err)
	}

	films := make([]model.Film, 0, len(rows))
	refs := make([]*model.Film, 0, len(rows))
	for _, row := range rows {
		films = append(films, row.toFilm())
		refs = append(refs, &films[len(films)-1])
	}

	if err := r.attachGenres(ctx, refs); err != nil {
		return nil, err
	}

	return films, nil
}

// reload refreshes the film value after a write so callers see the stored
// state, genre names included, not the request echo.
func (r *filmRepository) reload(ctx context.Context, f *model.Film) error {
	stored, err := r.GetByID(ctx, f.ID)
	if err != nil {
		return err
	}
	*f = *stored
	return nil
}

// attachGenres batch-loads genre associations for the given films,
// preserving per-film insertion order.
func (r *filmRepository) attachGenres(ctx context.Context, films []*model.Film) error {
	if len(films) == 0 {
		return nil
	}

	byID := make(map[int64]*model.Film, len(films))
	filmIDs := make([]int64, 0, len(films))
	for _, f := range films {
		byID[f.ID] = f
		filmIDs = append(filmIDs, f.ID)
	}

	query := `
		SELECT fg.film_id, g.id, g.name
		FROM film_genres fg
		JOIN genres g ON g.id = fg.genre_id
		WHERE fg.film_id = ANY($1)
		ORDER BY fg.film_id, fg.position
	`

	var rows []struct {
		FilmID int64  `db:"film_id"`
		ID     int64  `db:"id"`
		Name   string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(filmIDs)); err != nil {
		return fmt.Errorf("failed to load film genres: %w", err)
	}

	for _, row := range rows {
		f := byID[row.FilmID]
		f.Genres = append(f.Genres, model.Genre{ID: row.ID, Name: row.Name})
	}

	return nil
}

func insertGenres(ctx context.Context, tx *sqlx.Tx, filmID int64, genreIDs []int64) error {
	query := `INSERT INTO film_genres (film_id, genre_id, position) VALUES ($1, $2, $3)`
	for i, genreID := range genreIDs {
		if _, err := tx.ExecContext(ctx, query, filmID, genreID, i); err != nil {
			return fmt.Errorf("failed to insert film genre: %w", err)
		}
	}
	return nil
}
