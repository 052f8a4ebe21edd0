package service_test

import (
	"context"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/importer"
)

type mockParticipantRepo struct {
	insertBatchFn    func(ctx context.Context, records []importer.Record) error
	createFn         func(ctx context.Context, rec importer.Record) (*domain.Participant, error)
	getByIDFn        func(ctx context.Context, id string) (*domain.Participant, error)
	searchByNameFn   func(ctx context.Context, name, eventCode string) ([]domain.Participant, error)
	searchByPhoneFn  func(ctx context.Context, digits, eventCode string) ([]domain.Participant, error)
	listFn           func(ctx context.Context, filter domain.ParticipantFilter, limit, offset int) ([]domain.Participant, int64, error)
	listByEventFn    func(ctx context.Context, eventCode string) ([]domain.Participant, error)
	updateFieldFn    func(ctx context.Context, id, field, value string) error
	listEventCodesFn func(ctx context.Context) ([]string, error)
}

func (m *mockParticipantRepo) InsertBatch(ctx context.Context, records []importer.Record) error {
	return m.insertBatchFn(ctx, records)
}

func (m *mockParticipantRepo) Create(ctx context.Context, rec importer.Record) (*domain.Participant, error) {
	return m.createFn(ctx, rec)
}

func (m *mockParticipantRepo) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockParticipantRepo) SearchByName(ctx context.Context, name, eventCode string) ([]domain.Participant, error) {
	return m.searchByNameFn(ctx, name, eventCode)
}

func (m *mockParticipantRepo) SearchByPhone(ctx context.Context, digits, eventCode string) ([]domain.Participant, error) {
	return m.searchByPhoneFn(ctx, digits, eventCode)
}

func (m *mockParticipantRepo) List(ctx context.Context, filter domain.ParticipantFilter, limit, offset int) ([]domain.Participant, int64, error) {
	return m.listFn(ctx, filter, limit, offset)
}

func (m *mockParticipantRepo) ListByEvent(ctx context.Context, eventCode string) ([]domain.Participant, error) {
	return m.listByEventFn(ctx, eventCode)
}

func (m *mockParticipantRepo) UpdateField(ctx context.Context, id, field, value string) error {
	return m.updateFieldFn(ctx, id, field, value)
}

func (m *mockParticipantRepo) ListEventCodes(ctx context.Context) ([]string, error) {
	return m.listEventCodesFn(ctx)
}

type mockCheckInRepo struct {
	createFn          func(ctx context.Context, c *domain.CheckIn) (*domain.CheckIn, error)
	updateCountFn     func(ctx context.Context, participantID string, day, attendCount int) (*domain.CheckIn, error)
	countByDayFn      func(ctx context.Context, day int) (int64, error)
	listRowsFn        func(ctx context.Context) ([]domain.CheckInRow, error)
	listRowsByEventFn func(ctx context.Context, eventCode string) ([]domain.CheckInRow, error)
}

func (m *mockCheckInRepo) Create(ctx context.Context, c *domain.CheckIn) (*domain.CheckIn, error) {
	return m.createFn(ctx, c)
}

func (m *mockCheckInRepo) UpdateCount(ctx context.Context, participantID string, day, attendCount int) (*domain.CheckIn, error) {
	return m.updateCountFn(ctx, participantID, day, attendCount)
}

func (m *mockCheckInRepo) CountByDay(ctx context.Context, day int) (int64, error) {
	return m.countByDayFn(ctx, day)
}

func (m *mockCheckInRepo) ListRows(ctx context.Context) ([]domain.CheckInRow, error) {
	return m.listRowsFn(ctx)
}

func (m *mockCheckInRepo) ListRowsByEvent(ctx context.Context, eventCode string) ([]domain.CheckInRow, error) {
	return m.listRowsByEventFn(ctx, eventCode)
}

type mockStatsRepo struct {
	getFn    func(ctx context.Context, eventCode string) (*domain.SeminarStats, error)
	upsertFn func(ctx context.Context, stats *domain.SeminarStats) error
}

func (m *mockStatsRepo) Get(ctx context.Context, eventCode string) (*domain.SeminarStats, error) {
	return m.getFn(ctx, eventCode)
}

func (m *mockStatsRepo) Upsert(ctx context.Context, stats *domain.SeminarStats) error {
	return m.upsertFn(ctx, stats)
}

func floatPtr(v float64) *float64 { return &v }
