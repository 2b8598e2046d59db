package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"filmgraph/internal/model"
)

// The services depend on repository interfaces, so unit tests swap in small
// in-memory fakes instead of hitting a database. Function fields let each
// test override a single behavior.

type mockUserRepository struct {
	createFn   func(ctx context.Context, u *model.User) error
	updateFn   func(ctx context.Context, u *model.User) error
	getByIDFn  func(ctx context.Context, id int64) (*model.User, error)
	listFn     func(ctx context.Context) ([]model.User, error)
	allExistFn func(ctx context.Context, ids ...int64) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	u.ID = 1
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *model.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) List(ctx context.Context) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) AllExist(ctx context.Context, ids ...int64) (bool, error) {
	if m.allExistFn != nil {
		return m.allExistFn(ctx, ids...)
	}
	return true, nil
}

// mockFriendshipRepository keeps directed edges in memory with insertion
// order, mirroring the semantics of the SQL implementation.
type mockFriendshipRepository struct {
	edges map[int64][]int64
	users map[int64]model.User
}

func newMockFriendshipRepository() *mockFriendshipRepository {
	return &mockFriendshipRepository{
		edges: make(map[int64][]int64),
		users: make(map[int64]model.User),
	}
}

func (m *mockFriendshipRepository) addUser(id int64) {
	m.users[id] = model.User{ID: id}
}

func (m *mockFriendshipRepository) AddEdge(ctx context.Context, ownerID, friendID int64) error {
	for _, id := range m.edges[ownerID] {
		if id == friendID {
			return nil
		}
	}
	m.edges[ownerID] = append(m.edges[ownerID], friendID)
	return nil
}

func (m *mockFriendshipRepository) RemoveEdge(ctx context.Context, ownerID, friendID int64) error {
	targets := m.edges[ownerID]
	for i, id := range targets {
		if id == friendID {
			m.edges[ownerID] = append(targets[:i], targets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockFriendshipRepository) Friends(ctx context.Context, ownerID int64) ([]model.User, error) {
	var friends []model.User
	for _, id := range m.edges[ownerID] {
		friends = append(friends, m.users[id])
	}
	return friends, nil
}

func (m *mockFriendshipRepository) CommonFriends(ctx context.Context, ownerID, otherID int64) ([]model.User, error) {
	otherTargets := make(map[int64]bool)
	for _, id := range m.edges[otherID] {
		otherTargets[id] = true
	}
	var common []model.User
	for _, id := range m.edges[ownerID] {
		if otherTargets[id] {
			common = append(common, m.users[id])
		}
	}
	return common, nil
}

type mockFilmRepository struct {
	createFn      func(ctx context.Context, f *model.Film, genreIDs []int64) error
	updateFn      func(ctx context.Context, f *model.Film, genreIDs []int64) error
	getByIDFn     func(ctx context.Context, id int64) (*model.Film, error)
	listFn        func(ctx context.Context) ([]model.Film, error)
	listPopularFn func(ctx context.Context, limit int) ([]model.Film, error)
	existsFn      func(ctx context.Context, id int64) (bool, error)
}

func (m *mockFilmRepository) Create(ctx context.Context, f *model.Film, genreIDs []int64) error {
	if m.createFn != nil {
		return m.createFn(ctx, f, genreIDs)
	}
	f.ID = 1
	return nil
}

func (m *mockFilmRepository) Update(ctx context.Context, f *model.Film, genreIDs []int64) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, f, genreIDs)
	}
	return nil
}

func (m *mockFilmRepository) GetByID(ctx context.Context, id int64) (*model.Film, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrFilmNotFound
}

func (m *mockFilmRepository) List(ctx context.Context) ([]model.Film, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockFilmRepository) ListPopular(ctx context.Context, limit int) ([]model.Film, error) {
	if m.listPopularFn != nil {
		return m.listPopularFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockFilmRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

// mockLikeRepository keeps the (film, user) like set in memory with
// insertion order per film.
type mockLikeRepository struct {
	likes map[int64][]int64
}

func newMockLikeRepository() *mockLikeRepository {
	return &mockLikeRepository{likes: make(map[int64][]int64)}
}

func (m *mockLikeRepository) Add(ctx context.Context, filmID, userID int64) error {
	for _, id := range m.likes[filmID] {
		if id == userID {
			return nil
		}
	}
	m.likes[filmID] = append(m.likes[filmID], userID)
	return nil
}

func (m *mockLikeRepository) Remove(ctx context.Context, filmID, userID int64) error {
	likers := m.likes[filmID]
	for i, id := range likers {
		if id == userID {
			m.likes[filmID] = append(likers[:i], likers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockLikeRepository) UserIDs(ctx context.Context, filmID int64) ([]int64, error) {
	return m.likes[filmID], nil
}

func (m *mockLikeRepository) ByFilmIDs(ctx context.Context, filmIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64)
	for _, id := range filmIDs {
		if likers := m.likes[id]; likers != nil {
			result[id] = likers
		}
	}
	return result, nil
}

type mockGenreRepository struct {
	allExistFn func(ctx context.Context, ids ...int64) (bool, error)
}

func (m *mockGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	return nil, nil
}

func (m *mockGenreRepository) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	return nil, model.ErrGenreNotFound
}

func (m *mockGenreRepository) AllExist(ctx context.Context, ids ...int64) (bool, error) {
	if m.allExistFn != nil {
		return m.allExistFn(ctx, ids...)
	}
	return true, nil
}

type mockMpaRepository struct {
	existsFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockMpaRepository) List(ctx context.Context) ([]model.Mpa, error) {
	return nil, nil
}

func (m *mockMpaRepository) GetByID(ctx context.Context, id int64) (*model.Mpa, error) {
	return nil, model.ErrMpaNotFound
}

func (m *mockMpaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return true, nil
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
