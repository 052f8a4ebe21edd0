package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/repository"
	"github.com/growthops/checkin-api/pkg/auth"
	"github.com/growthops/checkin-api/pkg/config"
)

type LoginResponse struct {
	Token string           `json:"token"`
	User  *domain.UserRole `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, config: cfg}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidLogin
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidLogin
	}

	valid, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil || !valid {
		return nil, domain.ErrInvalidLogin
	}

	token, err := auth.NewSessionToken(user.UserID, user.Email, string(user.Role), s.config.Auth.JWTSecret, s.config.Auth.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &LoginResponse{Token: token, User: user}, nil
}
