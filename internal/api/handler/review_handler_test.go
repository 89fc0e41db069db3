package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/api/middleware"
	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

type stubReviewService struct {
	createFn func(ctx context.Context, userID string, in ports.ReviewInput) (*domain.Review, error)
	listFn   func(ctx context.Context, locationID string) ([]domain.Review, error)
	updateFn func(ctx context.Context, userID, reviewID string, in ports.ReviewInput) (*domain.Review, error)
	deleteFn func(ctx context.Context, userID, reviewID string) error
}

func (s *stubReviewService) Create(ctx context.Context, userID string, in ports.ReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, userID, in)
}

func (s *stubReviewService) ListByLocation(ctx context.Context, locationID string) ([]domain.Review, error) {
	return s.listFn(ctx, locationID)
}

func (s *stubReviewService) Update(ctx context.Context, userID, reviewID string, in ports.ReviewInput) (*domain.Review, error) {
	return s.updateFn(ctx, userID, reviewID, in)
}

func (s *stubReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	return s.deleteFn(ctx, userID, reviewID)
}

func TestReviewHandler_Create_Success(t *testing.T) {
	e := echo.New()
	stub := &stubReviewService{
		createFn: func(_ context.Context, userID string, in ports.ReviewInput) (*domain.Review, error) {
			if userID != "u1" {
				t.Fatalf("wrong principal: %q", userID)
			}
			return &domain.Review{ID: "r1", UserID: userID, LocationID: in.LocationID, Rating: in.Rating}, nil
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/opinions",
		`{"locationId":"loc-1","reviewText":"busy but safe","rating":4}`)
	c.Set(middleware.UserIDKey, "u1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Review created successfully" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestReviewHandler_Create_ZeroRatingAllowed(t *testing.T) {
	e := echo.New()
	var got ports.ReviewInput
	stub := &stubReviewService{
		createFn: func(_ context.Context, _ string, in ports.ReviewInput) (*domain.Review, error) {
			got = in
			return &domain.Review{ID: "r1"}, nil
		},
	}
	h := NewReviewHandler(stub)

	// An explicit zero rating is a legal value, not a missing field.
	c, rec := newJSONContext(e, http.MethodPost, "/opinions",
		`{"locationId":"loc-1","reviewText":"terrible","rating":0}`)
	c.Set(middleware.UserIDKey, "u1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Rating != 0 {
		t.Fatalf("zero rating lost: %d", got.Rating)
	}
}

func TestReviewHandler_Create_MissingFields(t *testing.T) {
	e := echo.New()
	h := NewReviewHandler(&stubReviewService{
		createFn: func(context.Context, string, ports.ReviewInput) (*domain.Review, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodPost, "/opinions", `{"locationId":"loc-1"}`)
	c.Set(middleware.UserIDKey, "u1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "All fields are required" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestReviewHandler_Update_NotOwner(t *testing.T) {
	e := echo.New()
	stub := &stubReviewService{
		updateFn: func(context.Context, string, string, ports.ReviewInput) (*domain.Review, error) {
			return nil, domain.ErrNotOwner
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newJSONContext(e, http.MethodPut, "/opinions/r1",
		`{"reviewText":"mine now","rating":1}`)
	c.SetParamNames("id")
	c.SetParamValues("r1")
	c.Set(middleware.UserIDKey, "u2")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "Unauthorized" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestReviewHandler_Delete_NotOwner(t *testing.T) {
	e := echo.New()
	stub := &stubReviewService{
		deleteFn: func(context.Context, string, string) error {
			return domain.ErrNotOwner
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/opinions/missing-or-foreign", "")
	c.SetParamNames("id")
	c.SetParamValues("missing-or-foreign")
	c.Set(middleware.UserIDKey, "u2")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// Missing and foreign reviews answer identically.
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "Unauthorized" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestReviewHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	stub := &stubReviewService{
		deleteFn: func(_ context.Context, userID, reviewID string) error {
			if userID != "u1" || reviewID != "r1" {
				t.Fatalf("unexpected args: %s %s", userID, reviewID)
			}
			return nil
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/opinions/r1", "")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	c.Set(middleware.UserIDKey, "u1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["message"] != "Review deleted successfully" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestReviewHandler_ListByLocation_EmptyEnvelope(t *testing.T) {
	e := echo.New()
	stub := &stubReviewService{
		listFn: func(_ context.Context, locationID string) ([]domain.Review, error) {
			if locationID != "loc-1" {
				t.Fatalf("unexpected location id: %s", locationID)
			}
			return nil, nil
		},
	}
	h := NewReviewHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/opinions/locations/loc-1/reviews", "")
	c.SetParamNames("locationId")
	c.SetParamValues("loc-1")

	if err := h.ListByLocation(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	reviews, ok := resp["reviews"].([]any)
	if !ok {
		t.Fatalf("expected reviews envelope, got %v", resp)
	}
	if len(reviews) != 0 {
		t.Fatalf("expected empty list, got %v", reviews)
	}
}
