package repository

import (
	"context"

	"filmgraph/internal/model"
)

type UserRepository interface {
	// Create inserts the user and fills in the store-assigned id and
	// timestamps.
	Create(ctx context.Context, u *model.User) error
	// Update rewrites the row; model.ErrUserNotFound when the id is absent.
	Update(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// AllExist reports whether every id resolves to a user. The ids must be
	// distinct.
	AllExist(ctx context.Context, ids ...int64) (bool, error)
}

type FriendshipRepository interface {
	// AddEdge inserts the directed edge owner->friend. Re-adding an
	// existing edge is a no-op, never a duplicate row.
	AddEdge(ctx context.Context, ownerID, friendID int64) error
	// RemoveEdge deletes the edge if present; absence is not an error.
	RemoveEdge(ctx context.Context, ownerID, friendID int64) error
	// Friends returns the users the owner has added, in edge insertion order.
	Friends(ctx context.Context, ownerID int64) ([]model.User, error)
	// CommonFriends returns users X with owner->X and other->X both present.
	CommonFriends(ctx context.Context, ownerID, otherID int64) ([]model.User, error)
}

type LikeRepository interface {
	// Add records that the user liked the film; duplicates are collapsed.
	Add(ctx context.Context, filmID, userID int64) error
	// Remove deletes the like if present; absence is not an error.
	Remove(ctx context.Context, filmID, userID int64) error
	// UserIDs returns ids of users who liked the film, oldest like first.
	UserIDs(ctx context.Context, filmID int64) ([]int64, error)
	// ByFilmIDs batch-loads liker ids for many films in one query.
	ByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]int64, error)
}

type FilmRepository interface {
	// Create inserts the film row plus its genre associations in one
	// transaction and fills in the store-assigned id.
	Create(ctx context.Context, f *model.Film, genreIDs []int64) error
	// Update rewrites the film row and replaces its genre associations in
	// one transaction; model.ErrFilmNotFound when the id is absent.
	Update(ctx context.Context, f *model.Film, genreIDs []int64) error
	GetByID(ctx context.Context, id int64) (*model.Film, error)
	List(ctx context.Context) ([]model.Film, error)
	// ListPopular returns up to limit films ordered by descending like
	// count; ties break on ascending film id.
	ListPopular(ctx context.Context, limit int) ([]model.Film, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type GenreRepository interface {
	List(ctx context.Context) ([]model.Genre, error)
	GetByID(ctx context.Context, id int64) (*model.Genre, error)
	// AllExist reports whether every id resolves to a genre. The ids must
	// be distinct.
	AllExist(ctx context.Context, ids ...int64) (bool, error)
}

type MpaRepository interface {
	List(ctx context.Context) ([]model.Mpa, error)
	GetByID(ctx context.Context, id int64) (*model.Mpa, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
