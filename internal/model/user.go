package model

import (
	"errors"
	"time"
)

// User is an immutable snapshot of a catalog user. Relationship state lives
// in the friendships table and is never embedded here, so handing a User to
// a caller can't alias stored state.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Login     string    `db:"login" json:"login"`
	Name      string    `db:"name" json:"name"`
	Birthday  *Date     `db:"birthday" json:"birthday,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required,nowhitespace"`
	Name     string `json:"name"`
	Birthday *Date  `json:"birthday"`
}

// UpdateUserRequest is the payload for PUT /users; the target id is embedded.
type UpdateUserRequest struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Email    string `json:"email" validate:"required,email"`
	Login    string `json:"login" validate:"required,nowhitespace"`
	Name     string `json:"name"`
	Birthday *Date  `json:"birthday"`
}

var (
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfFriendship is returned when a user tries to befriend themself.
	ErrSelfFriendship = errors.New("a user cannot be their own friend")
)
