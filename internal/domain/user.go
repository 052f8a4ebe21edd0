package domain

import (
	"errors"
	"time"
)

var (
	ErrForbidden      = errors.New("forbidden")
	ErrOwnAccount     = errors.New("cannot modify your own account")
	ErrAlreadyInvited = errors.New("email has already been invited")
	ErrInvalidLogin   = errors.New("invalid email or password")
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleGeneral Role = "general"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleGeneral:
		return Role(s), true
	default:
		return "", false
	}
}

// Capability names match the boolean columns on user_roles.
type Capability string

const (
	CanViewDashboard    Capability = "can_view_dashboard"
	CanViewParticipants Capability = "can_view_participants"
	CanViewAnalytics    Capability = "can_view_analytics"
	CanImportData       Capability = "can_import_data"
	CanManageUsers      Capability = "can_manage_users"
)

func ParseCapability(s string) (Capability, bool) {
	switch Capability(s) {
	case CanViewDashboard, CanViewParticipants, CanViewAnalytics, CanImportData, CanManageUsers:
		return Capability(s), true
	default:
		return "", false
	}
}

type Capabilities struct {
	ViewDashboard    bool `json:"can_view_dashboard"`
	ViewParticipants bool `json:"can_view_participants"`
	ViewAnalytics    bool `json:"can_view_analytics"`
	ImportData       bool `json:"can_import_data"`
	ManageUsers      bool `json:"can_manage_users"`
}

// AllCapabilities is what an admin gets on promotion; demotion to general
// clears every flag until an admin grants them back one by one.
func AllCapabilities(enabled bool) Capabilities {
	return Capabilities{
		ViewDashboard:    enabled,
		ViewParticipants: enabled,
		ViewAnalytics:    enabled,
		ImportData:       enabled,
		ManageUsers:      enabled,
	}
}

type UserRole struct {
	UserID       string       `json:"user_id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	Capabilities Capabilities `json:"permissions"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Has reports whether the user may exercise the capability. Admins pass
// every check regardless of individual flags.
func (u *UserRole) Has(c Capability) bool {
	if u.Role == RoleAdmin {
		return true
	}
	switch c {
	case CanViewDashboard:
		return u.Capabilities.ViewDashboard
	case CanViewParticipants:
		return u.Capabilities.ViewParticipants
	case CanViewAnalytics:
		return u.Capabilities.ViewAnalytics
	case CanImportData:
		return u.Capabilities.ImportData
	case CanManageUsers:
		return u.Capabilities.ManageUsers
	default:
		return false
	}
}

type PendingInvite struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
