package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// ReviewService implements review CRUD plus the per-record ownership check.
type ReviewService struct {
	repo ports.ReviewRepository
	log  zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, log: log}
}

func (s *ReviewService) Create(ctx context.Context, userID string, in ports.ReviewInput) (*domain.Review, error) {
	now := time.Now().UTC()
	review := &domain.Review{
		ID:         uuid.NewString(),
		UserID:     userID,
		LocationID: in.LocationID,
		ReviewText: in.ReviewText,
		Rating:     in.Rating,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", review.ID).Str("location_id", in.LocationID).Msg("review created")
	return review, nil
}

// ListByLocation returns the reviews for a location; an empty slice is a
// normal result, not an error.
func (s *ReviewService) ListByLocation(ctx context.Context, locationID string) ([]domain.Review, error) {
	return s.repo.FindByLocation(ctx, locationID)
}

// Update replaces the review text and rating after the ownership check. A
// missing review and a review owned by another user both fail with
// ErrNotOwner; the client cannot distinguish the two cases.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID string, in ports.ReviewInput) (*domain.Review, error) {
	review, err := s.authorizeOwnership(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	review.ReviewText = in.ReviewText
	review.Rating = in.Rating
	review.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", reviewID).Msg("review updated")
	return review, nil
}

// Delete removes the review after the ownership check.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	if _, err := s.authorizeOwnership(ctx, userID, reviewID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return err
	}

	s.log.Info().Str("review_id", reviewID).Msg("review deleted")
	return nil
}

// authorizeOwnership is a single read-then-decide: no transaction guards the
// window between this check and the following write.
func (s *ReviewService) authorizeOwnership(ctx context.Context, userID, reviewID string) (*domain.Review, error) {
	review, err := s.repo.FindByID(ctx, reviewID)
	if err != nil || review == nil {
		s.log.Warn().Str("review_id", reviewID).Str("user_id", userID).Msg("review not found or user not authorized")
		return nil, domain.ErrNotOwner
	}
	if !review.OwnedBy(userID) {
		s.log.Warn().Str("review_id", reviewID).Str("user_id", userID).Msg("review not found or user not authorized")
		return nil, domain.ErrNotOwner
	}
	return review, nil
}
