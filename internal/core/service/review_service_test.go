package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

type stubReviewRepo struct {
	reviews map[string]*domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrNotOwner
	}
	clone := *rev
	return &clone, nil
}

func (r *stubReviewRepo) FindByLocation(_ context.Context, locationID string) ([]domain.Review, error) {
	var out []domain.Review
	for _, rev := range r.reviews {
		if rev.LocationID == locationID {
			out = append(out, *rev)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *domain.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return domain.ErrNotOwner
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	delete(r.reviews, id)
	return nil
}

func (r *stubReviewRepo) Count(context.Context) (int64, error) {
	return int64(len(r.reviews)), nil
}

func TestReviewService_Create(t *testing.T) {
	repo := newStubReviewRepo()
	svc := NewReviewService(repo, zerolog.Nop())

	review, err := svc.Create(context.Background(), "user-1", ports.ReviewInput{
		LocationID: "loc-1",
		ReviewText: "quiet at night",
		Rating:     4,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if review.UserID != "user-1" {
		t.Fatalf("creator not recorded: %q", review.UserID)
	}
	if review.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestReviewService_Update_Owner(t *testing.T) {
	repo := newStubReviewRepo()
	svc := NewReviewService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "user-1", ports.ReviewInput{
		LocationID: "loc-1", ReviewText: "ok", Rating: 3,
	})

	updated, err := svc.Update(context.Background(), "user-1", created.ID, ports.ReviewInput{
		ReviewText: "better than I thought", Rating: 5,
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Rating != 5 || updated.ReviewText != "better than I thought" {
		t.Fatalf("fields not updated: %+v", updated)
	}
}

func TestReviewService_Update_ForeignReview(t *testing.T) {
	repo := newStubReviewRepo()
	svc := NewReviewService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "user-1", ports.ReviewInput{
		LocationID: "loc-1", ReviewText: "ok", Rating: 3,
	})

	if _, err := svc.Update(context.Background(), "user-2", created.ID, ports.ReviewInput{Rating: 1}); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner for foreign review, got %v", err)
	}

	// The stored review is untouched.
	stored, _ := repo.FindByID(context.Background(), created.ID)
	if stored.Rating != 3 {
		t.Fatalf("foreign update modified the record")
	}
}

func TestReviewService_Update_MissingReview(t *testing.T) {
	repo := newStubReviewRepo()
	svc := NewReviewService(repo, zerolog.Nop())

	// Missing records answer exactly like foreign ones.
	if _, err := svc.Update(context.Background(), "user-1", "no-such-id", ports.ReviewInput{}); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner for missing review, got %v", err)
	}
}

func TestReviewService_Delete_Owner(t *testing.T) {
	repo := newStubReviewRepo()
	svc := NewReviewService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "user-1", ports.ReviewInput{
		LocationID: "loc-1", ReviewText: "ok", Rating: 3,
	})

	if err := svc.Delete(context.Background(), "user-1", created.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); err == nil {
		t.Fatalf("review still present after delete")
	}
}

func TestReviewService_Delete_ForeignReview(t *testing.T) {
	repo := newStubReviewRepo()
	svc := NewReviewService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "user-1", ports.ReviewInput{
		LocationID: "loc-1", ReviewText: "ok", Rating: 3,
	})

	if err := svc.Delete(context.Background(), "user-2", created.ID); err != domain.ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); err != nil {
		t.Fatalf("foreign delete removed the record")
	}
}
