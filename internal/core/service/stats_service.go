package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// StatsService aggregates record counts for the admin dashboard.
type StatsService struct {
	users       ports.UserRepository
	locations   ports.LocationRepository
	reviews     ports.ReviewRepository
	assessments ports.FootpathRepository
	images      ports.ImageMetaRepository
	log         zerolog.Logger
}

func NewStatsService(
	users ports.UserRepository,
	locations ports.LocationRepository,
	reviews ports.ReviewRepository,
	assessments ports.FootpathRepository,
	images ports.ImageMetaRepository,
	log zerolog.Logger,
) *StatsService {
	return &StatsService{
		users:       users,
		locations:   locations,
		reviews:     reviews,
		assessments: assessments,
		images:      images,
		log:         log,
	}
}

// Summary performs one count per collection. Counts are read independently;
// the dashboard tolerates slight skew between them.
func (s *StatsService) Summary(ctx context.Context) (*ports.StatsResult, error) {
	result := &ports.StatsResult{}

	counts := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&result.Users, s.users.Count},
		{&result.Locations, s.locations.Count},
		{&result.Reviews, s.reviews.Count},
		{&result.Assessments, s.assessments.Count},
		{&result.Images, s.images.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return result, nil
}
