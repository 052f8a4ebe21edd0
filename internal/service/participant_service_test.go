package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/importer"
	"github.com/growthops/checkin-api/internal/service"
)

func TestListClampsPaging(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockParticipantRepo{
		listFn: func(_ context.Context, _ domain.ParticipantFilter, limit, offset int) ([]domain.Participant, int64, error) {
			gotLimit, gotOffset = limit, offset
			return nil, 0, nil
		},
	}
	svc := service.NewParticipantService(repo)

	if _, _, err := svc.List(context.Background(), domain.ParticipantFilter{}, 0, 0); err != nil {
		t.Fatal(err)
	}
	if gotLimit != 50 || gotOffset != 0 {
		t.Errorf("defaults: limit=%d offset=%d", gotLimit, gotOffset)
	}

	if _, _, err := svc.List(context.Background(), domain.ParticipantFilter{}, 3, 20); err != nil {
		t.Fatal(err)
	}
	if gotLimit != 20 || gotOffset != 40 {
		t.Errorf("page 3: limit=%d offset=%d", gotLimit, gotOffset)
	}

	if _, _, err := svc.List(context.Background(), domain.ParticipantFilter{}, 1, 5000); err != nil {
		t.Fatal(err)
	}
	if gotLimit != 50 {
		t.Errorf("oversized page size should clamp, got %d", gotLimit)
	}
}

func TestGetByIDMissing(t *testing.T) {
	repo := &mockParticipantRepo{
		getByIDFn: func(_ context.Context, _ string) (*domain.Participant, error) {
			return nil, nil
		},
	}
	svc := service.NewParticipantService(repo)

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCreateRequiresNameOrPhone(t *testing.T) {
	created := 0
	repo := &mockParticipantRepo{
		createFn: func(_ context.Context, rec importer.Record) (*domain.Participant, error) {
			created++
			return &domain.Participant{ID: "p-1", Name: rec.Name}, nil
		},
	}
	svc := service.NewParticipantService(repo)

	if _, err := svc.Create(context.Background(), importer.Record{Email: "a@b.com"}); err == nil {
		t.Error("expected error without name or phone")
	}
	if created != 0 {
		t.Error("invalid record reached the store")
	}

	if _, err := svc.Create(context.Background(), importer.Record{Phone: "60123456789"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Errorf("created = %d", created)
	}
}
