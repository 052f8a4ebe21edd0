package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/growthops/checkin-api/internal/cache"
	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/repository"
	"github.com/growthops/checkin-api/pkg/events"
	"github.com/growthops/checkin-api/pkg/logger"
)

type CheckInService interface {
	Search(ctx context.Context, query, eventCode string) ([]domain.Participant, error)
	Submit(ctx context.Context, participantID string, day, attendCount int) (*domain.CheckIn, error)
	UpdateCount(ctx context.Context, participantID string, day, attendCount int) (*domain.CheckIn, error)
}

type checkinService struct {
	checkinRepo     repository.CheckInRepository
	participantRepo repository.ParticipantRepository
	bus             events.Publisher
	statsCache      *cache.StatsCache
}

func NewCheckInService(
	checkinRepo repository.CheckInRepository,
	participantRepo repository.ParticipantRepository,
	bus events.Publisher,
	statsCache *cache.StatsCache,
) CheckInService {
	return &checkinService{
		checkinRepo:     checkinRepo,
		participantRepo: participantRepo,
		bus:             bus,
		statsCache:      statsCache,
	}
}

// Search matches the query against phone when it looks like a number
// (digits after stripping separators) and against name otherwise, scoped to
// one seminar instance.
func (s *checkinService) Search(ctx context.Context, query, eventCode string) ([]domain.Participant, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}

	if digits := stripNonDigits(query); digits != "" && looksLikePhone(query) {
		return s.participantRepo.SearchByPhone(ctx, digits, eventCode)
	}
	return s.participantRepo.SearchByName(ctx, query, eventCode)
}

// looksLikePhone reports whether every character is a digit or a common
// phone separator, so "012-345 6789" searches by phone but "Ali 2" by name.
func looksLikePhone(q string) bool {
	hasDigit := false
	for _, r := range q {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return hasDigit
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Submit confirms attendance for one participant and day. The participant's
// stored event_code is the source of truth, not whatever the client sent.
// A racing second confirmation surfaces as ErrAlreadyCheckedIn via the
// store's uniqueness constraint.
func (s *checkinService) Submit(ctx context.Context, participantID string, day, attendCount int) (*domain.CheckIn, error) {
	if day < 1 {
		return nil, fmt.Errorf("day must be positive")
	}
	if attendCount < 1 {
		return nil, fmt.Errorf("attend count must be positive")
	}

	participant, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participant: %w", err)
	}
	if participant == nil {
		return nil, domain.ErrNotFound
	}

	checkin, err := s.checkinRepo.Create(ctx, &domain.CheckIn{
		ParticipantID: participantID,
		EventCode:     participant.EventCode,
		Day:           day,
		AttendCount:   attendCount,
		Status:        domain.CheckInConfirmed,
	})
	if err != nil {
		return nil, err
	}

	s.statsCache.Invalidate(ctx, cache.DashboardKey, cache.SeminarKey(checkin.EventCode))

	if s.bus != nil {
		event := events.CheckInConfirmedEvent{
			ParticipantID: checkin.ParticipantID,
			EventCode:     checkin.EventCode,
			Day:           checkin.Day,
			AttendCount:   checkin.AttendCount,
			ConfirmedAt:   time.Now(),
		}
		if err := s.bus.Publish(ctx, events.CheckInConfirmed, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish check-in event", "error", err, "participant_id", participantID)
		}
	}

	return checkin, nil
}

// UpdateCount corrects the head-count of an existing check-in. It never
// creates a row; a missing check-in is ErrNotFound.
func (s *checkinService) UpdateCount(ctx context.Context, participantID string, day, attendCount int) (*domain.CheckIn, error) {
	if attendCount < 1 {
		return nil, fmt.Errorf("attend count must be positive")
	}

	checkin, err := s.checkinRepo.UpdateCount(ctx, participantID, day, attendCount)
	if err != nil {
		return nil, err
	}

	s.statsCache.Invalidate(ctx, cache.DashboardKey, cache.SeminarKey(checkin.EventCode))

	if s.bus != nil {
		event := events.CheckInConfirmedEvent{
			ParticipantID: checkin.ParticipantID,
			EventCode:     checkin.EventCode,
			Day:           checkin.Day,
			AttendCount:   checkin.AttendCount,
			ConfirmedAt:   time.Now(),
		}
		if err := s.bus.Publish(ctx, events.CheckInUpdated, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish check-in update event", "error", err, "participant_id", participantID)
		}
	}

	return checkin, nil
}
