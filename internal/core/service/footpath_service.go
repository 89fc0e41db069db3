package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// FootpathService implements CRUD for footpath assessments.
type FootpathService struct {
	repo ports.FootpathRepository
	log  zerolog.Logger
}

func NewFootpathService(repo ports.FootpathRepository, log zerolog.Logger) *FootpathService {
	return &FootpathService{repo: repo, log: log}
}

func (s *FootpathService) Create(ctx context.Context, in ports.FootpathInput) (*domain.FootpathAssessment, error) {
	now := time.Now().UTC()
	a := &domain.FootpathAssessment{
		ID:              uuid.NewString(),
		LocationID:      in.LocationID,
		ImageURL:        in.ImageURL,
		CitizenFeedback: in.CitizenFeedback,
		AIAssessment:    in.AIAssessment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.log.Info().Str("assessment_id", a.ID).Str("location_id", in.LocationID).Msg("footpath assessment created")
	return a, nil
}

// ListByLocation fails with ErrAssessmentNotFound when no assessments exist
// for the location.
func (s *FootpathService) ListByLocation(ctx context.Context, locationID string) ([]domain.FootpathAssessment, error) {
	assessments, err := s.repo.FindByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if len(assessments) == 0 {
		return nil, domain.ErrAssessmentNotFound
	}
	return assessments, nil
}

func (s *FootpathService) Update(ctx context.Context, id string, in ports.FootpathInput) (*domain.FootpathAssessment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.ImageURL = in.ImageURL
	a.CitizenFeedback = in.CitizenFeedback
	a.AIAssessment = in.AIAssessment
	a.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.log.Info().Str("assessment_id", id).Msg("footpath assessment updated")
	return a, nil
}

func (s *FootpathService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("assessment_id", id).Msg("footpath assessment deleted")
	return nil
}
