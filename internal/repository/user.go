package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"filmgraph/internal/model"
)

// userRepository implements UserRepository using sqlx.
type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (email, login, name, birthday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query, u.Email, u.Login, u.Name, u.Birthday)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, u *model.User) error {
	query := `
		UPDATE users
		SET email = $1, login = $2, name = $3, birthday = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query, u.Email, u.Login, u.Name, u.Birthday, u.ID)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return model.ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, email, login, name, birthday, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, email, login, name, birthday, created_at, updated_at
		FROM users
		ORDER BY id
	`

	var users []model.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *userRepository) AllExist(ctx context.Context, ids ...int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	query := `SELECT COUNT(*) FROM users WHERE id = ANY($1)`

	var count int
	err := r.db.GetContext(ctx, &count, query, pq.Array(ids))
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count == len(ids), nil
}
