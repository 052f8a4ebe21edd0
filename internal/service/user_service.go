package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/mailer"
	"github.com/growthops/checkin-api/internal/repository"
	"github.com/growthops/checkin-api/pkg/config"
	"github.com/growthops/checkin-api/pkg/logger"
)

// UserService is the role administration surface. Handlers gate it behind
// the manage-users capability; the self-modification guards live here.
type UserService interface {
	List(ctx context.Context) ([]domain.UserRole, error)
	Get(ctx context.Context, userID string) (*domain.UserRole, error)
	ChangeRole(ctx context.Context, actorID, targetID string, role domain.Role) error
	SetCapability(ctx context.Context, actorID, targetID string, capability domain.Capability, value bool) error
	Delete(ctx context.Context, actorID, targetID string) error
	Invite(ctx context.Context, email string, role domain.Role) (*domain.PendingInvite, error)
}

type userService struct {
	userRepo repository.UserRepository
	mail     mailer.Service
	config   *config.Config
}

func NewUserService(userRepo repository.UserRepository, mail mailer.Service, cfg *config.Config) UserService {
	return &userService{userRepo: userRepo, mail: mail, config: cfg}
}

func (s *userService) List(ctx context.Context) ([]domain.UserRole, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) Get(ctx context.Context, userID string) (*domain.UserRole, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// ChangeRole promotes or demotes a user. Promotion to admin turns every
// capability flag on; demotion clears them all, to be re-granted flag by
// flag. Changing your own role is refused.
func (s *userService) ChangeRole(ctx context.Context, actorID, targetID string, role domain.Role) error {
	if actorID == targetID {
		return domain.ErrOwnAccount
	}
	caps := domain.AllCapabilities(role == domain.RoleAdmin)
	return s.userRepo.UpdateRole(ctx, targetID, role, caps)
}

func (s *userService) SetCapability(ctx context.Context, actorID, targetID string, capability domain.Capability, value bool) error {
	if actorID == targetID {
		return domain.ErrOwnAccount
	}
	return s.userRepo.SetCapability(ctx, targetID, capability, value)
}

func (s *userService) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrOwnAccount
	}
	return s.userRepo.Delete(ctx, targetID)
}

// Invite records a pending invite and emails the new staff member a login
// link. A second invite for the same address is rejected. The account row
// itself is provisioned by the identity service when the invite is
// accepted.
func (s *userService) Invite(ctx context.Context, email string, role domain.Role) (*domain.PendingInvite, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	existing, err := s.userRepo.FindInvite(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invites: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyInvited
	}

	invite, err := s.userRepo.CreateInvite(ctx, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	if err := s.mail.SendInvite(email, string(role), s.config.Email.LoginURL); err != nil {
		// The invite row exists; a failed mail just means re-sending later.
		logger.ErrorContext(ctx, "Failed to send invite email", "error", err, "email", email)
	}

	return invite, nil
}
