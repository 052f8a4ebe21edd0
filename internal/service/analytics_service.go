package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/growthops/checkin-api/internal/cache"
	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/repository"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	ListSeminars(ctx context.Context) ([]string, error)
	SeminarAnalytics(ctx context.Context, eventCode string) (*domain.SeminarAnalytics, error)
	GetSeminarStats(ctx context.Context, eventCode string) (*domain.SeminarStats, error)
	UpdateSeminarStats(ctx context.Context, stats *domain.SeminarStats) error
}

type analyticsService struct {
	checkinRepo     repository.CheckInRepository
	participantRepo repository.ParticipantRepository
	statsRepo       repository.StatsRepository
	statsCache      *cache.StatsCache
}

func NewAnalyticsService(
	checkinRepo repository.CheckInRepository,
	participantRepo repository.ParticipantRepository,
	statsRepo repository.StatsRepository,
	statsCache *cache.StatsCache,
) AnalyticsService {
	return &analyticsService{
		checkinRepo:     checkinRepo,
		participantRepo: participantRepo,
		statsRepo:       statsRepo,
		statsCache:      statsCache,
	}
}

// Dashboard aggregates the event-wide overview in memory. Sales totals,
// sales-value buckets and ticket-type counts are de-duplicated by
// participant so someone checked in on both days counts once; niche and
// state counts stay per check-in row.
func (s *analyticsService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var cached domain.DashboardStats
	if s.statsCache.Get(ctx, cache.DashboardKey, &cached) {
		return &cached, nil
	}

	day1, err := s.checkinRepo.CountByDay(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to count day 1 check-ins: %w", err)
	}
	day2, err := s.checkinRepo.CountByDay(ctx, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to count day 2 check-ins: %w", err)
	}

	rows, err := s.checkinRepo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in rows: %w", err)
	}

	stats := &domain.DashboardStats{
		Day1:       day1,
		Day2:       day2,
		Niche:      map[string]int{},
		State:      map[string]int{},
		TicketType: map[string]int{},
		SalesValue: map[string]int{},
	}

	seen := make(map[string]struct{})
	for _, row := range rows {
		if _, dup := seen[row.ParticipantID]; !dup {
			seen[row.ParticipantID] = struct{}{}

			if row.TotalSales != nil && *row.TotalSales > 0 {
				amount := *row.TotalSales
				stats.TotalSales += amount
				stats.SalesValue["RM "+strconv.FormatFloat(amount, 'f', -1, 64)]++
			} else {
				stats.SalesValue["RM 0"]++
			}

			if row.TicketType != "" {
				stats.TicketType[row.TicketType]++
			}
		}

		if row.Niche != "" {
			stats.Niche[row.Niche]++
		}
		if row.State != "" {
			stats.State[row.State]++
		}
	}

	s.statsCache.Set(ctx, cache.DashboardKey, stats)
	return stats, nil
}

func (s *analyticsService) ListSeminars(ctx context.Context) ([]string, error) {
	return s.participantRepo.ListEventCodes(ctx)
}

// SeminarAnalytics drills into one seminar instance. Attendance is the sum
// of head-counts, split paid vs sponsor by ticket class; the categorical
// breakdowns run over the event's registered participants.
func (s *analyticsService) SeminarAnalytics(ctx context.Context, eventCode string) (*domain.SeminarAnalytics, error) {
	if eventCode == "" {
		return nil, fmt.Errorf("event code is required")
	}

	var cached domain.SeminarAnalytics
	if s.statsCache.Get(ctx, cache.SeminarKey(eventCode), &cached) {
		return &cached, nil
	}

	stats := &domain.SeminarAnalytics{
		EventCode:    eventCode,
		ByNiche:      map[string]int{},
		ByState:      map[string]int{},
		ByTicketType: map[string]int{},
		ByPackage:    map[string]int{},
		ByPayment:    map[string]int{},
		ByBdsStatus:  map[string]int{},
	}

	rows, err := s.checkinRepo.ListRowsByEvent(ctx, eventCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in rows: %w", err)
	}

	for _, row := range rows {
		sponsor := domain.ClassifyTicket(row.TicketType) == domain.TicketSponsor
		switch row.Day {
		case 1:
			stats.Day1Attendance += row.AttendCount
			if sponsor {
				stats.Day1Sponsor += row.AttendCount
			} else {
				stats.Day1Paid += row.AttendCount
			}
		case 2:
			stats.Day2Attendance += row.AttendCount
			if sponsor {
				stats.Day2Sponsor += row.AttendCount
			} else {
				stats.Day2Paid += row.AttendCount
			}
		}
	}

	participants, err := s.participantRepo.ListByEvent(ctx, eventCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	for _, p := range participants {
		bump(stats.ByNiche, p.Niche)
		bump(stats.ByState, p.State)
		bump(stats.ByTicketType, p.TicketType)
		bump(stats.ByPackage, p.Package)
		bump(stats.ByPayment, p.PaymentStatus)
		bump(stats.ByBdsStatus, p.BdsStatus)
	}

	s.statsCache.Set(ctx, cache.SeminarKey(eventCode), stats)
	return stats, nil
}

func bump(m map[string]int, key string) {
	if key != "" {
		m[key]++
	}
}

func (s *analyticsService) GetSeminarStats(ctx context.Context, eventCode string) (*domain.SeminarStats, error) {
	stats, err := s.statsRepo.Get(ctx, eventCode)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		// No manual counts entered yet; zeros, not an error.
		return &domain.SeminarStats{EventCode: eventCode}, nil
	}
	return stats, nil
}

func (s *analyticsService) UpdateSeminarStats(ctx context.Context, stats *domain.SeminarStats) error {
	if stats.EventCode == "" {
		return fmt.Errorf("event code is required")
	}
	if stats.PaidCount < 0 || stats.SponsorCount < 0 {
		return fmt.Errorf("counts cannot be negative")
	}
	if err := s.statsRepo.Upsert(ctx, stats); err != nil {
		return err
	}
	s.statsCache.Invalidate(ctx, cache.SeminarKey(stats.EventCode))
	return nil
}
