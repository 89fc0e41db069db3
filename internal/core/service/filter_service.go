package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// FilterService implements CRUD for dashboard category filters.
type FilterService struct {
	repo ports.FilterRepository
	log  zerolog.Logger
}

func NewFilterService(repo ports.FilterRepository, log zerolog.Logger) *FilterService {
	return &FilterService{repo: repo, log: log}
}

func (s *FilterService) Create(ctx context.Context, name, description string) (*domain.Filter, error) {
	now := time.Now().UTC()
	f := &domain.Filter{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	s.log.Info().Str("filter_id", f.ID).Str("name", name).Msg("filter created")
	return f, nil
}

func (s *FilterService) List(ctx context.Context) ([]domain.Filter, error) {
	return s.repo.FindAll(ctx)
}

// Update keeps the stored value for any field left empty in the input.
func (s *FilterService) Update(ctx context.Context, id, name, description string) (*domain.Filter, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		f.Name = name
	}
	if description != "" {
		f.Description = description
	}
	f.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	s.log.Info().Str("filter_id", id).Msg("filter updated")
	return f, nil
}

func (s *FilterService) Delete(ctx context.Context, id string) error {
	// Existence check first so a missing filter surfaces as 404, not as a
	// silent no-op delete.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("filter_id", id).Msg("filter deleted")
	return nil
}
