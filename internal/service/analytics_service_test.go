package service_test

import (
	"context"
	"testing"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/service"
)

func TestDashboardDedupesByParticipant(t *testing.T) {
	rows := []domain.CheckInRow{
		// Same participant on both days: sales, bucket and ticket type
		// count once; niche and state count per row.
		{ParticipantID: "p-1", Day: 1, AttendCount: 1, Niche: "F&B", State: "Selangor", TicketType: "VIP", TotalSales: floatPtr(5000)},
		{ParticipantID: "p-1", Day: 2, AttendCount: 1, Niche: "F&B", State: "Selangor", TicketType: "VIP", TotalSales: floatPtr(5000)},
		{ParticipantID: "p-2", Day: 1, AttendCount: 2, Niche: "Retail", State: "Johor", TicketType: "General", TotalSales: nil},
	}
	checkinRepo := &mockCheckInRepo{
		countByDayFn: func(_ context.Context, day int) (int64, error) {
			if day == 1 {
				return 2, nil
			}
			return 1, nil
		},
		listRowsFn: func(_ context.Context) ([]domain.CheckInRow, error) {
			return rows, nil
		},
	}
	svc := service.NewAnalyticsService(checkinRepo, &mockParticipantRepo{}, &mockStatsRepo{}, nil)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Day1 != 2 || stats.Day2 != 1 {
		t.Errorf("day counts = %d/%d", stats.Day1, stats.Day2)
	}
	if stats.TotalSales != 5000 {
		t.Errorf("total sales = %v, want 5000 (counted once)", stats.TotalSales)
	}
	if stats.SalesValue["RM 5000"] != 1 {
		t.Errorf("sales buckets = %v", stats.SalesValue)
	}
	if stats.SalesValue["RM 0"] != 1 {
		t.Errorf("nil sales should bucket as RM 0: %v", stats.SalesValue)
	}
	if stats.TicketType["VIP"] != 1 || stats.TicketType["General"] != 1 {
		t.Errorf("ticket types = %v", stats.TicketType)
	}
	// Niche and state are per check-in row, so p-1 counts twice.
	if stats.Niche["F&B"] != 2 || stats.Niche["Retail"] != 1 {
		t.Errorf("niche = %v", stats.Niche)
	}
	if stats.State["Selangor"] != 2 || stats.State["Johor"] != 1 {
		t.Errorf("state = %v", stats.State)
	}
}

func TestSeminarAnalyticsSponsorSplit(t *testing.T) {
	checkinRepo := &mockCheckInRepo{
		listRowsByEventFn: func(_ context.Context, _ string) ([]domain.CheckInRow, error) {
			return []domain.CheckInRow{
				{ParticipantID: "p-1", Day: 1, AttendCount: 2, TicketType: "General"},
				{ParticipantID: "p-2", Day: 1, AttendCount: 1, TicketType: "Sponsored VIP"},
				{ParticipantID: "p-3", Day: 2, AttendCount: 3, TicketType: "VIP"},
			}, nil
		},
	}
	participantRepo := &mockParticipantRepo{
		listByEventFn: func(_ context.Context, _ string) ([]domain.Participant, error) {
			return []domain.Participant{
				{Niche: "F&B", State: "Selangor", TicketType: "General", Package: "Basic", PaymentStatus: "Paid"},
				{Niche: "Retail", State: "Selangor", TicketType: "Sponsored VIP"},
			}, nil
		},
	}
	svc := service.NewAnalyticsService(checkinRepo, participantRepo, &mockStatsRepo{}, nil)

	stats, err := svc.SeminarAnalytics(context.Background(), "9X-KL-2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Day1Attendance != 3 || stats.Day1Paid != 2 || stats.Day1Sponsor != 1 {
		t.Errorf("day1 = %d/%d/%d", stats.Day1Attendance, stats.Day1Paid, stats.Day1Sponsor)
	}
	if stats.Day2Attendance != 3 || stats.Day2Paid != 3 || stats.Day2Sponsor != 0 {
		t.Errorf("day2 = %d/%d/%d", stats.Day2Attendance, stats.Day2Paid, stats.Day2Sponsor)
	}
	if stats.ByState["Selangor"] != 2 {
		t.Errorf("byState = %v", stats.ByState)
	}
	if stats.ByPayment["Paid"] != 1 {
		t.Errorf("byPayment = %v", stats.ByPayment)
	}
	// Blank values never become map keys.
	if _, ok := stats.ByPackage[""]; ok {
		t.Errorf("empty key leaked into byPackage: %v", stats.ByPackage)
	}
}

func TestSeminarAnalyticsRequiresEventCode(t *testing.T) {
	svc := service.NewAnalyticsService(&mockCheckInRepo{}, &mockParticipantRepo{}, &mockStatsRepo{}, nil)
	if _, err := svc.SeminarAnalytics(context.Background(), ""); err == nil {
		t.Error("expected error for empty event code")
	}
}

func TestGetSeminarStatsDefaultsToZeros(t *testing.T) {
	statsRepo := &mockStatsRepo{
		getFn: func(_ context.Context, _ string) (*domain.SeminarStats, error) {
			return nil, nil
		},
	}
	svc := service.NewAnalyticsService(&mockCheckInRepo{}, &mockParticipantRepo{}, statsRepo, nil)

	stats, err := svc.GetSeminarStats(context.Background(), "9X-KL-2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.EventCode != "9X-KL-2026" || stats.PaidCount != 0 || stats.SponsorCount != 0 {
		t.Errorf("got %+v", stats)
	}
}

func TestUpdateSeminarStatsValidation(t *testing.T) {
	upserts := 0
	statsRepo := &mockStatsRepo{
		upsertFn: func(_ context.Context, _ *domain.SeminarStats) error {
			upserts++
			return nil
		},
	}
	svc := service.NewAnalyticsService(&mockCheckInRepo{}, &mockParticipantRepo{}, statsRepo, nil)

	if err := svc.UpdateSeminarStats(context.Background(), &domain.SeminarStats{PaidCount: 1}); err == nil {
		t.Error("expected error for missing event code")
	}
	if err := svc.UpdateSeminarStats(context.Background(), &domain.SeminarStats{EventCode: "9X", PaidCount: -1}); err == nil {
		t.Error("expected error for negative count")
	}
	if upserts != 0 {
		t.Errorf("invalid updates reached the store: %d", upserts)
	}

	if err := svc.UpdateSeminarStats(context.Background(), &domain.SeminarStats{EventCode: "9X", PaidCount: 10, SponsorCount: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upserts != 1 {
		t.Errorf("upserts = %d", upserts)
	}
}

func TestListSeminars(t *testing.T) {
	participantRepo := &mockParticipantRepo{
		listEventCodesFn: func(_ context.Context) ([]string, error) {
			return []string{"9X-KL-2026", "9X-PJ-2026"}, nil
		},
	}
	svc := service.NewAnalyticsService(&mockCheckInRepo{}, participantRepo, &mockStatsRepo{}, nil)

	codes, err := svc.ListSeminars(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codes) != 2 {
		t.Errorf("got %v", codes)
	}
}
