package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/growthops/checkin-api/internal/domain"
)

type CheckInRepository interface {
	Create(ctx context.Context, c *domain.CheckIn) (*domain.CheckIn, error)
	UpdateCount(ctx context.Context, participantID string, day, attendCount int) (*domain.CheckIn, error)
	CountByDay(ctx context.Context, day int) (int64, error)
	ListRows(ctx context.Context) ([]domain.CheckInRow, error)
	ListRowsByEvent(ctx context.Context, eventCode string) ([]domain.CheckInRow, error)
}

type checkinRepository struct {
	pool *pgxpool.Pool
}

func NewCheckInRepository(pool *pgxpool.Pool) CheckInRepository {
	return &checkinRepository{pool: pool}
}

const checkinCols = `id, participant_id, event_code, day, attend_count, status, created_at`

// uniqueViolation is the SQLSTATE Postgres raises when the second writer
// races the (participant_id, day) constraint.
const uniqueViolation = "23505"

func (r *checkinRepository) Create(ctx context.Context, c *domain.CheckIn) (*domain.CheckIn, error) {
	const q = `INSERT INTO checkins (participant_id, event_code, day, attend_count, status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING ` + checkinCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var out domain.CheckIn
	err := r.pool.QueryRow(ctx, q, c.ParticipantID, c.EventCode, c.Day, c.AttendCount, c.Status).Scan(
		&out.ID, &out.ParticipantID, &out.EventCode, &out.Day, &out.AttendCount, &out.Status, &out.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyCheckedIn
		}
		return nil, err
	}
	return &out, nil
}

func (r *checkinRepository) UpdateCount(ctx context.Context, participantID string, day, attendCount int) (*domain.CheckIn, error) {
	const q = `UPDATE checkins SET attend_count = $3
		WHERE participant_id = $1 AND day = $2
		RETURNING ` + checkinCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var out domain.CheckIn
	err := r.pool.QueryRow(ctx, q, participantID, day, attendCount).Scan(
		&out.ID, &out.ParticipantID, &out.EventCode, &out.Day, &out.AttendCount, &out.Status, &out.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *checkinRepository) CountByDay(ctx context.Context, day int) (int64, error) {
	const q = `SELECT count(*) FROM checkins WHERE day = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var count int64
	if err := r.pool.QueryRow(ctx, q, day).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

const checkinRowCols = `c.participant_id, c.day, c.attend_count,
p.niche, p.state, p.ticket_type, p.total_sales,
p.package, p.payment_status, p.bds_status`

func (r *checkinRepository) ListRows(ctx context.Context) ([]domain.CheckInRow, error) {
	const q = `SELECT ` + checkinRowCols + `
		FROM checkins c JOIN participants p ON p.id = c.participant_id`
	return r.queryRows(ctx, q)
}

func (r *checkinRepository) ListRowsByEvent(ctx context.Context, eventCode string) ([]domain.CheckInRow, error) {
	const q = `SELECT ` + checkinRowCols + `
		FROM checkins c JOIN participants p ON p.id = c.participant_id
		WHERE c.event_code = $1`
	return r.queryRows(ctx, q, eventCode)
}

func (r *checkinRepository) queryRows(ctx context.Context, q string, args ...any) ([]domain.CheckInRow, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CheckInRow
	for rows.Next() {
		var row domain.CheckInRow
		if err := rows.Scan(
			&row.ParticipantID, &row.Day, &row.AttendCount,
			&row.Niche, &row.State, &row.TicketType, &row.TotalSales,
			&row.Package, &row.PaymentStatus, &row.BdsStatus,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
