package service

import (
	"context"
	"fmt"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/importer"
	"github.com/growthops/checkin-api/internal/repository"
)

type ParticipantService interface {
	List(ctx context.Context, filter domain.ParticipantFilter, page, pageSize int) ([]domain.Participant, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Participant, error)
	Create(ctx context.Context, rec importer.Record) (*domain.Participant, error)
	UpdateField(ctx context.Context, id, field, value string) error
}

type participantService struct {
	repo repository.ParticipantRepository
}

func NewParticipantService(repo repository.ParticipantRepository) ParticipantService {
	return &participantService{repo: repo}
}

func (s *participantService) List(ctx context.Context, filter domain.ParticipantFilter, page, pageSize int) ([]domain.Participant, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize
	return s.repo.List(ctx, filter, pageSize, offset)
}

func (s *participantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	participant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if participant == nil {
		return nil, domain.ErrNotFound
	}
	return participant, nil
}

func (s *participantService) Create(ctx context.Context, rec importer.Record) (*domain.Participant, error) {
	if rec.Name == "" && rec.Phone == "" {
		return nil, fmt.Errorf("participant needs a name or a phone")
	}
	return s.repo.Create(ctx, rec)
}

func (s *participantService) UpdateField(ctx context.Context, id, field, value string) error {
	return s.repo.UpdateField(ctx, id, field, value)
}
