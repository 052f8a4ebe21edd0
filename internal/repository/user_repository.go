package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/growthops/checkin-api/internal/domain"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.UserRole, error)
	FindByID(ctx context.Context, userID string) (*domain.UserRole, error)
	List(ctx context.Context) ([]domain.UserRole, error)
	UpdateRole(ctx context.Context, userID string, role domain.Role, caps domain.Capabilities) error
	SetCapability(ctx context.Context, userID string, capability domain.Capability, value bool) error
	Delete(ctx context.Context, userID string) error
	FindInvite(ctx context.Context, email string) (*domain.PendingInvite, error)
	CreateInvite(ctx context.Context, email string, role domain.Role) (*domain.PendingInvite, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userCols = `user_id, email, password_hash, role,
can_view_dashboard, can_view_participants, can_view_analytics,
can_import_data, can_manage_users, created_at`

func scanUser(row pgx.Row) (*domain.UserRole, error) {
	var u domain.UserRole
	err := row.Scan(
		&u.UserID, &u.Email, &u.PasswordHash, &u.Role,
		&u.Capabilities.ViewDashboard, &u.Capabilities.ViewParticipants,
		&u.Capabilities.ViewAnalytics, &u.Capabilities.ImportData,
		&u.Capabilities.ManageUsers, &u.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.UserRole, error) {
	const q = `SELECT ` + userCols + ` FROM user_roles WHERE lower(email) = lower($1)`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanUser(r.pool.QueryRow(ctx, q, email))
}

func (r *userRepository) FindByID(ctx context.Context, userID string) (*domain.UserRole, error) {
	const q = `SELECT ` + userCols + ` FROM user_roles WHERE user_id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return scanUser(r.pool.QueryRow(ctx, q, userID))
}

func (r *userRepository) List(ctx context.Context) ([]domain.UserRole, error) {
	const q = `SELECT ` + userCols + ` FROM user_roles ORDER BY created_at DESC`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserRole
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdateRole(ctx context.Context, userID string, role domain.Role, caps domain.Capabilities) error {
	const q = `UPDATE user_roles SET
		role = $2,
		can_view_dashboard = $3,
		can_view_participants = $4,
		can_view_analytics = $5,
		can_import_data = $6,
		can_manage_users = $7
		WHERE user_id = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, q, userID, role,
		caps.ViewDashboard, caps.ViewParticipants, caps.ViewAnalytics,
		caps.ImportData, caps.ManageUsers)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) SetCapability(ctx context.Context, userID string, capability domain.Capability, value bool) error {
	// capability is a member of the closed Capability set, so it is safe to
	// interpolate as a column name. Reject anything else.
	if _, ok := domain.ParseCapability(string(capability)); !ok {
		return fmt.Errorf("unknown capability %q", capability)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	q := fmt.Sprintf(`UPDATE user_roles SET %s = $2 WHERE user_id = $1`, capability)
	tag, err := r.pool.Exec(ctx, q, userID, value)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) FindInvite(ctx context.Context, email string) (*domain.PendingInvite, error) {
	const q = `SELECT id, email, role, created_at FROM pending_invites WHERE lower(email) = lower($1)`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var inv domain.PendingInvite
	err := r.pool.QueryRow(ctx, q, email).Scan(&inv.ID, &inv.Email, &inv.Role, &inv.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *userRepository) CreateInvite(ctx context.Context, email string, role domain.Role) (*domain.PendingInvite, error) {
	const q = `INSERT INTO pending_invites (email, role) VALUES ($1,$2)
		RETURNING id, email, role, created_at`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var inv domain.PendingInvite
	if err := r.pool.QueryRow(ctx, q, email, role).Scan(&inv.ID, &inv.Email, &inv.Role, &inv.CreatedAt); err != nil {
		return nil, err
	}
	return &inv, nil
}
