package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/service"
	"github.com/growthops/checkin-api/pkg/auth"
	"github.com/growthops/checkin-api/pkg/config"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	hash, err := argon2id.CreateHash("s3cret", argon2id.DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	userRepo := &mockUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.UserRole, error) {
			return &domain.UserRole{
				UserID:       "u-1",
				Email:        email,
				PasswordHash: hash,
				Role:         domain.RoleAdmin,
			}, nil
		},
	}
	svc := service.NewAuthService(userRepo, authConfig())

	resp, err := svc.Login(context.Background(), "  Admin@Example.com ", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.User.Email != "admin@example.com" {
		t.Errorf("email = %q, want normalized", resp.User.Email)
	}

	claims, err := auth.Parse(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Sub != "u-1" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := argon2id.CreateHash("s3cret", argon2id.DefaultParams)
	if err != nil {
		t.Fatal(err)
	}
	userRepo := &mockUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*domain.UserRole, error) {
			return &domain.UserRole{UserID: "u-1", Email: email, PasswordHash: hash}, nil
		},
	}
	svc := service.NewAuthService(userRepo, authConfig())

	if _, err := svc.Login(context.Background(), "admin@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidLogin) {
		t.Errorf("got %v, want ErrInvalidLogin", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	userRepo := &mockUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*domain.UserRole, error) {
			return nil, nil
		},
	}
	svc := service.NewAuthService(userRepo, authConfig())

	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidLogin) {
		t.Errorf("got %v, want ErrInvalidLogin", err)
	}
}

func TestLoginBlankCredentials(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, authConfig())

	if _, err := svc.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidLogin) {
		t.Errorf("got %v, want ErrInvalidLogin", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidLogin) {
		t.Errorf("got %v, want ErrInvalidLogin", err)
	}
}
