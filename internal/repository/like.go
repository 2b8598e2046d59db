package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// likeRepository implements LikeRepository using sqlx. The film_likes table
// is the single owner of like state; film rows never embed liker sets.
type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Add(ctx context.Context, filmID, userID int64) error {
	query := `
		INSERT INTO film_likes (film_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (film_id, user_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, filmID, userID); err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}

	return nil
}

func (r *likeRepository) Remove(ctx context.Context, filmID, userID int64) error {
	query := `DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, filmID, userID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	return nil
}

func (r *likeRepository) UserIDs(ctx context.Context, filmID int64) ([]int64, error) {
	query := `SELECT user_id FROM film_likes WHERE film_id = $1 ORDER BY created_at, user_id`

	var userIDs []int64
	if err := r.db.SelectContext(ctx, &userIDs, query, filmID); err != nil {
		return nil, fmt.Errorf("failed to get film likes: %w", err)
	}

	return userIDs, nil
}

func (r *likeRepository) ByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64)
	if len(filmIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT film_id, user_id
		FROM film_likes
		WHERE film_id = ANY($1)
		ORDER BY created_at, user_id
	`

	var rows []struct {
		FilmID int64 `db:"film_id"`
		UserID int64 `db:"user_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(filmIDs)); err != nil {
		return nil, fmt.Errorf("failed to batch-load likes: %w", err)
	}

	for _, row := range rows {
		result[row.FilmID] = append(result[row.FilmID], row.UserID)
	}

	return result, nil
}
