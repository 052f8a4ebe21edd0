package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/growthops/checkin-api/internal/domain"
)

type StatsRepository interface {
	Get(ctx context.Context, eventCode string) (*domain.SeminarStats, error)
	Upsert(ctx context.Context, stats *domain.SeminarStats) error
}

type statsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) Get(ctx context.Context, eventCode string) (*domain.SeminarStats, error) {
	const q = `SELECT event_code, paid_count, sponsor_count FROM seminar_stats WHERE event_code = $1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var s domain.SeminarStats
	err := r.pool.QueryRow(ctx, q, eventCode).Scan(&s.EventCode, &s.PaidCount, &s.SponsorCount)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *statsRepository) Upsert(ctx context.Context, stats *domain.SeminarStats) error {
	const q = `INSERT INTO seminar_stats (event_code, paid_count, sponsor_count)
		VALUES ($1,$2,$3)
		ON CONFLICT (event_code) DO UPDATE SET
			paid_count = EXCLUDED.paid_count,
			sponsor_count = EXCLUDED.sponsor_count,
			updated_at = now()`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, q, stats.EventCode, stats.PaidCount, stats.SponsorCount)
	return err
}
