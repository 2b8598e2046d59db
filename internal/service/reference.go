package service

import (
	"context"

	"filmgraph/internal/model"
	"filmgraph/internal/repository"
)

// GenreService exposes the read-only genre reference table.
type GenreService struct {
	repo repository.GenreRepository
}

func NewGenreService(repo repository.GenreRepository) *GenreService {
	return &GenreService{repo: repo}
}

func (s *GenreService) List(ctx context.Context) ([]model.Genre, error) {
	return s.repo.List(ctx)
}

func (s *GenreService) GetByID(ctx context.Context, id int64) (*model.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

// MpaService exposes the read-only MPA rating reference table.
type MpaService struct {
	repo repository.MpaRepository
}

func NewMpaService(repo repository.MpaRepository) *MpaService {
	return &MpaService{repo: repo}
}

func (s *MpaService) List(ctx context.Context) ([]model.Mpa, error) {
	return s.repo.List(ctx)
}

func (s *MpaService) GetByID(ctx context.Context, id int64) (*model.Mpa, error) {
	return s.repo.GetByID(ctx, id)
}
