package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"filmgraph/internal/model"
)

type genreRepository struct {
	db *sqlx.DB
}

func NewGenreRepository(db *sqlx.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	err := r.db.SelectContext(ctx, &genres, `SELECT id, name FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	var g model.Genre
	err := r.db.GetContext(ctx, &g, `SELECT id, name FROM genres WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}
	return &g, nil
}

func (r *genreRepository) AllExist(ctx context.Context, ids ...int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM genres WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return false, fmt.Errorf("failed to check genre existence: %w", err)
	}

	return count == len(ids), nil
}
