package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// LabelEnqueuer abstracts the labeling job queue (the sharded dispatcher).
type LabelEnqueuer interface {
	Enqueue(job ports.LabelJob)
}

// ImageMetaService implements image metadata CRUD. Uploads without labels are
// handed to the async labeling pipeline.
type ImageMetaService struct {
	repo     ports.ImageMetaRepository
	enqueuer LabelEnqueuer
	log      zerolog.Logger
}

func NewImageMetaService(repo ports.ImageMetaRepository, enqueuer LabelEnqueuer, log zerolog.Logger) *ImageMetaService {
	return &ImageMetaService{repo: repo, enqueuer: enqueuer, log: log}
}

func (s *ImageMetaService) Upload(ctx context.Context, in ports.ImageMetaInput) (*domain.ImageMetadata, error) {
	labels := in.Labels
	if labels == nil {
		labels = []string{}
	}

	now := time.Now().UTC()
	meta, err := s.repo.Create(ctx, &domain.ImageMetadata{
		LocationID:  in.LocationID,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Labels:      labels,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	if len(labels) == 0 && s.enqueuer != nil {
		s.enqueuer.Enqueue(ports.LabelJob{ImageID: meta.ID, ImageURL: meta.ImageURL})
		s.log.Info().Str("image_id", meta.ID).Msg("labeling job enqueued")
	}

	s.log.Info().Str("image_id", meta.ID).Str("location_id", in.LocationID).Msg("image metadata uploaded")
	return meta, nil
}

// ListByLocation fails with ErrImageMetaNotFound when the location has no
// image metadata.
func (s *ImageMetaService) ListByLocation(ctx context.Context, locationID string) ([]domain.ImageMetadata, error) {
	metas, err := s.repo.FindByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, domain.ErrImageMetaNotFound
	}
	return metas, nil
}

func (s *ImageMetaService) Update(ctx context.Context, id string, in ports.ImageMetaInput) (*domain.ImageMetadata, error) {
	meta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	meta.ImageURL = in.ImageURL
	meta.Description = in.Description
	meta.Labels = in.Labels
	if meta.Labels == nil {
		meta.Labels = []string{}
	}
	meta.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, meta); err != nil {
		return nil, err
	}

	s.log.Info().Str("image_id", id).Msg("image metadata updated")
	return meta, nil
}

func (s *ImageMetaService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("image_id", id).Msg("image metadata deleted")
	return nil
}
