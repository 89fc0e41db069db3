package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// LocationService implements CRUD for map locations.
type LocationService struct {
	repo ports.LocationRepository
	log  zerolog.Logger
}

func NewLocationService(repo ports.LocationRepository, log zerolog.Logger) *LocationService {
	return &LocationService{repo: repo, log: log}
}

func (s *LocationService) Create(ctx context.Context, in ports.LocationInput) (*domain.Location, error) {
	now := time.Now().UTC()
	loc := &domain.Location{
		ID:                uuid.NewString(),
		Name:              in.Name,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		Type:              in.Type,
		Pollution:         in.Pollution,
		Safety:            in.Safety,
		TouristAttraction: in.TouristAttraction,
		CrimeRate:         in.CrimeRate,
		CostOfLiving:      domain.CostOfLiving(in.CostOfLiving),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Create(ctx, loc); err != nil {
		return nil, err
	}

	s.log.Info().Str("location_id", loc.ID).Str("name", loc.Name).Msg("location created")
	return loc, nil
}

func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	return s.repo.FindAll(ctx)
}

func (s *LocationService) Get(ctx context.Context, id string) (*domain.Location, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LocationService) Update(ctx context.Context, id string, in ports.LocationInput) (*domain.Location, error) {
	loc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	loc.Name = in.Name
	loc.Latitude = in.Latitude
	loc.Longitude = in.Longitude
	loc.Type = in.Type
	loc.Pollution = in.Pollution
	loc.Safety = in.Safety
	loc.TouristAttraction = in.TouristAttraction
	loc.CrimeRate = in.CrimeRate
	loc.CostOfLiving = domain.CostOfLiving(in.CostOfLiving)
	loc.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, loc); err != nil {
		return nil, err
	}

	s.log.Info().Str("location_id", id).Msg("location updated")
	return loc, nil
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("location_id", id).Msg("location deleted")
	return nil
}
