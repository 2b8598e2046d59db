package service

import (
	"context"
	"log/slog"
	"time"

	govalidator "github.com/go-playground/validator/v10"

	"filmgraph/internal/model"
	"filmgraph/internal/repository"
	"filmgraph/internal/validation"
)

// DefaultPopularCount is used when GET /films/popular has no count param.
const DefaultPopularCount = 10

// The first public film screening; release dates before it are rejected.
var firstFilmRelease = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// FilmService handles film CRUD, the like index and popularity ranking.
type FilmService struct {
	filmRepo  repository.FilmRepository
	likeRepo  repository.LikeRepository
	userRepo  repository.UserRepository
	genreRepo repository.GenreRepository
	mpaRepo   repository.MpaRepository
	validate  *govalidator.Validate
	log       *slog.Logger
}

func NewFilmService(
	filmRepo repository.FilmRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	genreRepo repository.GenreRepository,
	mpaRepo repository.MpaRepository,
	validate *govalidator.Validate,
	log *slog.Logger,
) *FilmService {
	return &FilmService{
		filmRepo:  filmRepo,
		likeRepo:  likeRepo,
		userRepo:  userRepo,
		genreRepo: genreRepo,
		mpaRepo:   mpaRepo,
		validate:  validate,
		log:       log,
	}
}

// Create validates the request, checks its genre and MPA references and
// inserts the film with its genre associations.
func (s *FilmService) Create(ctx context.Context, req *model.CreateFilmRequest) (*model.Film, error) {
	if err := s.validateFilm(req, req.ReleaseDate); err != nil {
		return nil, err
	}

	genreIDs := dedupeIDs(req.GenreIDs)
	if err := s.requireReferences(ctx, req.MpaID, genreIDs); err != nil {
		return nil, err
	}

	film := &model.Film{
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		Duration:    req.Duration,
		Mpa:         model.Mpa{ID: req.MpaID},
	}

	if err := s.filmRepo.Create(ctx, film, genreIDs); err != nil {
		return nil, err
	}

	s.log.Info("film created", "id", film.ID, "name", film.Name)
	return film, nil
}

// Update rewrites an existing film and replaces its genre set;
// model.ErrFilmNotFound when the embedded id was never created.
func (s *FilmService) Update(ctx context.Context, req *model.UpdateFilmRequest) (*model.Film, error) {
	if err := s.validateFilm(req, req.ReleaseDate); err != nil {
		return nil, err
	}

	genreIDs := dedupeIDs(req.GenreIDs)
	if err := s.requireReferences(ctx, req.MpaID, genreIDs); err != nil {
		return nil, err
	}

	film := &model.Film{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate,
		Duration:    req.Duration,
		Mpa:         model.Mpa{ID: req.MpaID},
	}

	if err := s.filmRepo.Update(ctx, film, genreIDs); err != nil {
		return nil, err
	}

	if err := s.attachLikes(ctx, film); err != nil {
		return nil, err
	}

	s.log.Info("film updated", "id", film.ID)
	return film, nil
}

func (s *FilmService) GetByID(ctx context.Context, id int64) (*model.Film, error) {
	film, err := s.filmRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachLikes(ctx, film); err != nil {
		return nil, err
	}
	return film, nil
}

func (s *FilmService) List(ctx context.Context) ([]model.Film, error) {
	films, err := s.filmRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.attachLikesBatch(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

// AddLike records that the user liked the film. Both ids must resolve;
// liking the same film twice leaves the like set unchanged.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := s.requireFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.likeRepo.Add(ctx, filmID, userID); err != nil {
		return err
	}

	s.log.Info("like added", "film_id", filmID, "user_id", userID)
	return nil
}

// RemoveLike deletes the like if present; removing an absent like succeeds
// silently.
func (s *FilmService) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := s.requireFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.likeRepo.Remove(ctx, filmID, userID); err != nil {
		return err
	}

	s.log.Info("like removed", "film_id", filmID, "user_id", userID)
	return nil
}

// Popular returns up to count films ordered by descending like count,
// recomputed on every call. Asking for more films than exist returns all of
// them; a non-positive count is a validation failure.
func (s *FilmService) Popular(ctx context.Context, count int) ([]model.Film, error) {
	if count < 1 {
		return nil, model.Invalidf("count must be a positive integer")
	}

	films, err := s.filmRepo.ListPopular(ctx, count)
	if err != nil {
		return nil, err
	}
	if err := s.attachLikesBatch(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *FilmService) validateFilm(req any, releaseDate model.Date) error {
	if fieldErrs := validation.ValidateStruct(s.validate, req); fieldErrs != nil {
		return &model.ValidationError{Fields: fieldErrs}
	}
	if releaseDate.IsZero() {
		return model.Invalidf("release date is required")
	}
	if releaseDate.Before(firstFilmRelease) {
		return model.Invalidf("release date must not be before 1895-12-28")
	}
	return nil
}

func (s *FilmService) requireReferences(ctx context.Context, mpaID int64, genreIDs []int64) error {
	ok, err := s.mpaRepo.Exists(ctx, mpaID)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrMpaNotFound
	}

	ok, err = s.genreRepo.AllExist(ctx, genreIDs...)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrGenreNotFound
	}

	return nil
}

func (s *FilmService) requireFilmAndUser(ctx context.Context, filmID, userID int64) error {
	ok, err := s.filmRepo.Exists(ctx, filmID)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrFilmNotFound
	}

	ok, err = s.userRepo.AllExist(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrUserNotFound
	}

	return nil
}

func (s *FilmService) attachLikes(ctx context.Context, film *model.Film) error {
	likedBy, err := s.likeRepo.UserIDs(ctx, film.ID)
	if err != nil {
		return err
	}
	if likedBy == nil {
		likedBy = []int64{}
	}
	film.LikedBy = likedBy
	return nil
}

func (s *FilmService) attachLikesBatch(ctx context.Context, films []model.Film) error {
	if len(films) == 0 {
		return nil
	}

	filmIDs := make([]int64, len(films))
	for i := range films {
		filmIDs[i] = films[i].ID
	}

	likes, err := s.likeRepo.ByFilmIDs(ctx, filmIDs)
	if err != nil {
		return err
	}

	for i := range films {
		if likedBy := likes[films[i].ID]; likedBy != nil {
			films[i].LikedBy = likedBy
		} else {
			films[i].LikedBy = []int64{}
		}
	}

	return nil
}

// dedupeIDs collapses duplicate ids while keeping first-occurrence order.
func dedupeIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
