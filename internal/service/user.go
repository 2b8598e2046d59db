package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	govalidator "github.com/go-playground/validator/v10"

	"filmgraph/internal/model"
	"filmgraph/internal/repository"
	"filmgraph/internal/validation"
)

// UserService handles user CRUD and the write-time rules the storage layer
// should never have to know about.
type UserService struct {
	repo     repository.UserRepository
	validate *govalidator.Validate
	log      *slog.Logger
}

func NewUserService(repo repository.UserRepository, validate *govalidator.Validate, log *slog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		validate: validate,
		log:      log,
	}
}

// Create validates the request and inserts the user. A blank display name
// defaults to the login here, at write time, so reads never re-derive it.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := s.validateUser(req, req.Name, req.Birthday); err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Login:    req.Login,
		Name:     displayName(req.Name, req.Login),
		Birthday: req.Birthday,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user created", "id", user.ID, "login", user.Login)
	return user, nil
}

// Update rewrites an existing user; model.ErrUserNotFound when the embedded
// id was never created.
func (s *UserService) Update(ctx context.Context, req *model.UpdateUserRequest) (*model.User, error) {
	if err := s.validateUser(req, req.Name, req.Birthday); err != nil {
		return nil, err
	}

	user := &model.User{
		ID:       req.ID,
		Email:    req.Email,
		Login:    req.Login,
		Name:     displayName(req.Name, req.Login),
		Birthday: req.Birthday,
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user updated", "id", user.ID)
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) validateUser(req any, name string, birthday *model.Date) error {
	if fieldErrs := validation.ValidateStruct(s.validate, req); fieldErrs != nil {
		return &model.ValidationError{Fields: fieldErrs}
	}
	if birthday != nil && birthday.After(time.Now()) {
		return model.Invalidf("birthday must not be in the future")
	}
	return nil
}

func displayName(name, login string) string {
	if strings.TrimSpace(name) == "" {
		return login
	}
	return name
}
