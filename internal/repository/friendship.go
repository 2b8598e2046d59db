package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"filmgraph/internal/model"
)

// friendshipRepository implements FriendshipRepository using sqlx. Edges are
// directed; the symmetric "mutual friend" view is derived in queries, never
// stored twice.
type friendshipRepository struct {
	db *sqlx.DB
}

func NewFriendshipRepository(db *sqlx.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) AddEdge(ctx context.Context, ownerID, friendID int64) error {
	query := `
		INSERT INTO friendships (user_id, friend_id, confirmed)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (user_id, friend_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, ownerID, friendID); err != nil {
		return fmt.Errorf("failed to add friend edge: %w", err)
	}

	return nil
}

func (r *friendshipRepository) RemoveEdge(ctx context.Context, ownerID, friendID int64) error {
	query := `DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2`

	if _, err := r.db.ExecContext(ctx, query, ownerID, friendID); err != nil {
		return fmt.Errorf("failed to remove friend edge: %w", err)
	}

	return nil
}

func (r *friendshipRepository) Friends(ctx context.Context, ownerID int64) ([]model.User, error) {
	query := `
		SELECT u.id, u.email, u.login, u.name, u.birthday, u.created_at, u.updated_at
		FROM friendships f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = $1 AND f.confirmed
		ORDER BY f.created_at, u.id
	`

	var users []model.User
	if err := r.db.SelectContext(ctx, &users, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	return users, nil
}

func (r *friendshipRepository) CommonFriends(ctx context.Context, ownerID, otherID int64) ([]model.User, error) {
	query := `
		SELECT u.id, u.email, u.login, u.name, u.birthday, u.created_at, u.updated_at
		FROM friendships f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = $1
		  AND f.friend_id IN (SELECT friend_id FROM friendships WHERE user_id = $2)
		ORDER BY u.id
	`

	var users []model.User
	if err := r.db.SelectContext(ctx, &users, query, ownerID, otherID); err != nil {
		return nil, fmt.Errorf("failed to list common friends: %w", err)
	}

	return users, nil
}
