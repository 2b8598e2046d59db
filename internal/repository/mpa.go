package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"filmgraph/internal/model"
)

type mpaRepository struct {
	db *sqlx.DB
}

func NewMpaRepository(db *sqlx.DB) MpaRepository {
	return &mpaRepository{db: db}
}

func (r *mpaRepository) List(ctx context.Context) ([]model.Mpa, error) {
	var ratings []model.Mpa
	err := r.db.SelectContext(ctx, &ratings, `SELECT id, name, description FROM mpa_ratings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mpa ratings: %w", err)
	}
	return ratings, nil
}

func (r *mpaRepository) GetByID(ctx context.Context, id int64) (*model.Mpa, error) {
	var m model.Mpa
	err := r.db.GetContext(ctx, &m, `SELECT id, name, description FROM mpa_ratings WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrMpaNotFound
		}
		return nil, fmt.Errorf("failed to get mpa rating by id: %w", err)
	}
	return &m, nil
}

func (r *mpaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM mpa_ratings WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check mpa existence: %w", err)
	}
	return exists, nil
}
