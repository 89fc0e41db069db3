package ports

import (
	"context"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

// LocationRepository defines persistence for map locations.
type LocationRepository interface {
	Create(ctx context.Context, loc *domain.Location) error
	FindAll(ctx context.Context) ([]domain.Location, error)
	FindByID(ctx context.Context, id string) (*domain.Location, error)
	Update(ctx context.Context, loc *domain.Location) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ReviewRepository defines persistence for location reviews. FindByID is the
// read half of the ownership check: callers decide, the repository only reads.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByLocation(ctx context.Context, locationID string) ([]domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// FootpathRepository defines persistence for footpath assessments.
type FootpathRepository interface {
	Create(ctx context.Context, a *domain.FootpathAssessment) error
	FindByID(ctx context.Context, id string) (*domain.FootpathAssessment, error)
	FindByLocation(ctx context.Context, locationID string) ([]domain.FootpathAssessment, error)
	Update(ctx context.Context, a *domain.FootpathAssessment) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// FilterRepository defines persistence for dashboard category filters.
type FilterRepository interface {
	Create(ctx context.Context, f *domain.Filter) error
	FindAll(ctx context.Context) ([]domain.Filter, error)
	FindByID(ctx context.Context, id string) (*domain.Filter, error)
	Update(ctx context.Context, f *domain.Filter) error
	Delete(ctx context.Context, id string) error
}

// ImageMetaRepository defines persistence for image metadata documents.
type ImageMetaRepository interface {
	Create(ctx context.Context, meta *domain.ImageMetadata) (*domain.ImageMetadata, error)
	FindByID(ctx context.Context, id string) (*domain.ImageMetadata, error)
	FindByLocation(ctx context.Context, locationID string) ([]domain.ImageMetadata, error)
	Update(ctx context.Context, meta *domain.ImageMetadata) error
	// SetLabels patches only the labels field; used by the async labeling worker.
	SetLabels(ctx context.Context, id string, labels []string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
