package service

import (
	"context"
	"errors"
	"testing"

	"filmgraph/internal/model"
	"filmgraph/internal/validation"
)

func validCreateUser() *model.CreateUserRequest {
	birthday := model.NewDate(1990, 5, 17)
	return &model.CreateUserRequest{
		Email:    "grace@example.com",
		Login:    "grace",
		Name:     "Grace Hopper",
		Birthday: &birthday,
	}
}

func TestUserServiceCreate(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, validation.New(), testLogger(t))

	user, err := svc.Create(context.Background(), validCreateUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected repository-assigned id")
	}
	if user.Name != "Grace Hopper" {
		t.Errorf("name = %q, want %q", user.Name, "Grace Hopper")
	}
}

func TestUserServiceCreateDefaultsNameToLogin(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, validation.New(), testLogger(t))

	req := validCreateUser()
	req.Name = "   "

	user, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Name != "grace" {
		t.Errorf("name = %q, want login %q", user.Name, "grace")
	}
}

func TestUserServiceCreateValidation(t *testing.T) {
	futureBirthday := model.NewDate(2200, 1, 1)

	tests := []struct {
		name   string
		mutate func(req *model.CreateUserRequest)
	}{
		{"missing email", func(req *model.CreateUserRequest) { req.Email = "" }},
		{"malformed email", func(req *model.CreateUserRequest) { req.Email = "not-an-email" }},
		{"missing login", func(req *model.CreateUserRequest) { req.Login = "" }},
		{"login with spaces", func(req *model.CreateUserRequest) { req.Login = "gr ace" }},
		{"login with tab", func(req *model.CreateUserRequest) { req.Login = "gr\tace" }},
		{"future birthday", func(req *model.CreateUserRequest) { req.Birthday = &futureBirthday }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			repo := &mockUserRepository{
				createFn: func(ctx context.Context, u *model.User) error {
					created = true
					return nil
				},
			}
			svc := NewUserService(repo, validation.New(), testLogger(t))

			req := validCreateUser()
			tt.mutate(req)

			if _, err := svc.Create(context.Background(), req); !errors.Is(err, model.ErrValidation) {
				t.Errorf("error = %v, want validation failure", err)
			}
			if created {
				t.Error("repository must not be called for an invalid request")
			}
		})
	}
}

func TestUserServiceCreateAllowsNilBirthday(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, validation.New(), testLogger(t))

	req := validCreateUser()
	req.Birthday = nil

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
}

func TestUserServiceUpdateUnknownID(t *testing.T) {
	repo := &mockUserRepository{
		updateFn: func(ctx context.Context, u *model.User) error {
			return model.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, validation.New(), testLogger(t))

	birthday := model.NewDate(1990, 5, 17)
	req := &model.UpdateUserRequest{
		ID:       99,
		Email:    "grace@example.com",
		Login:    "grace",
		Birthday: &birthday,
	}

	if _, err := svc.Update(context.Background(), req); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrUserNotFound)
	}
}

func TestUserServiceUpdateDefaultsNameToLogin(t *testing.T) {
	var saved *model.User
	repo := &mockUserRepository{
		updateFn: func(ctx context.Context, u *model.User) error {
			saved = u
			return nil
		},
	}
	svc := NewUserService(repo, validation.New(), testLogger(t))

	req := &model.UpdateUserRequest{
		ID:    7,
		Email: "grace@example.com",
		Login: "grace",
	}

	if _, err := svc.Update(context.Background(), req); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if saved == nil || saved.Name != "grace" {
		t.Errorf("stored user = %+v, want name defaulted to login", saved)
	}
}
