package ports

import (
	"context"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

// LocationInput carries all fields accepted when creating or replacing a location.
type LocationInput struct {
	Name              string
	Latitude          float64
	Longitude         float64
	Type              string
	Pollution         string
	Safety            string
	TouristAttraction bool
	CrimeRate         float64
	CostOfLiving      string
}

// LocationService implements CRUD over map locations.
type LocationService interface {
	Create(ctx context.Context, in LocationInput) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
	Get(ctx context.Context, id string) (*domain.Location, error)
	Update(ctx context.Context, id string, in LocationInput) (*domain.Location, error)
	Delete(ctx context.Context, id string) error
}

// ReviewInput carries the mutable fields of a review.
type ReviewInput struct {
	LocationID string
	ReviewText string
	Rating     int
}

// ReviewService implements review CRUD. Update and Delete perform the
// handler-local ownership check: both a missing review and a review owned by
// another principal fail with domain.ErrNotOwner.
type ReviewService interface {
	Create(ctx context.Context, userID string, in ReviewInput) (*domain.Review, error)
	ListByLocation(ctx context.Context, locationID string) ([]domain.Review, error)
	Update(ctx context.Context, userID, reviewID string, in ReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, userID, reviewID string) error
}

// FootpathInput carries the mutable fields of a footpath assessment.
type FootpathInput struct {
	LocationID      string
	ImageURL        string
	CitizenFeedback string
	AIAssessment    string
}

// FootpathService implements footpath assessment CRUD.
type FootpathService interface {
	Create(ctx context.Context, in FootpathInput) (*domain.FootpathAssessment, error)
	ListByLocation(ctx context.Context, locationID string) ([]domain.FootpathAssessment, error)
	Update(ctx context.Context, id string, in FootpathInput) (*domain.FootpathAssessment, error)
	Delete(ctx context.Context, id string) error
}

// FilterService implements category filter CRUD. Update keeps the stored
// value for any field left empty in the input.
type FilterService interface {
	Create(ctx context.Context, name, description string) (*domain.Filter, error)
	List(ctx context.Context) ([]domain.Filter, error)
	Update(ctx context.Context, id, name, description string) (*domain.Filter, error)
	Delete(ctx context.Context, id string) error
}

// ImageMetaInput carries the mutable fields of an image metadata record.
type ImageMetaInput struct {
	LocationID  string
	ImageURL    string
	Description string
	Labels      []string
}

// ImageMetaService implements image metadata CRUD. Uploads with no labels are
// scheduled for asynchronous AI labeling.
type ImageMetaService interface {
	Upload(ctx context.Context, in ImageMetaInput) (*domain.ImageMetadata, error)
	ListByLocation(ctx context.Context, locationID string) ([]domain.ImageMetadata, error)
	Update(ctx context.Context, id string, in ImageMetaInput) (*domain.ImageMetadata, error)
	Delete(ctx context.Context, id string) error
}

// StatsResult aggregates record counts for the admin dashboard.
type StatsResult struct {
	Users       int64
	Locations   int64
	Reviews     int64
	Assessments int64
	Images      int64
}

// StatsService serves the admin dashboard summary.
type StatsService interface {
	Summary(ctx context.Context) (*StatsResult, error)
}
