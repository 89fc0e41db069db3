package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

type stubLocationService struct {
	createFn func(ctx context.Context, in ports.LocationInput) (*domain.Location, error)
	getFn    func(ctx context.Context, id string) (*domain.Location, error)
}

func (s *stubLocationService) Create(ctx context.Context, in ports.LocationInput) (*domain.Location, error) {
	return s.createFn(ctx, in)
}

func (s *stubLocationService) List(context.Context) ([]domain.Location, error) {
	return []domain.Location{}, nil
}

func (s *stubLocationService) Get(ctx context.Context, id string) (*domain.Location, error) {
	return s.getFn(ctx, id)
}

func (s *stubLocationService) Update(context.Context, string, ports.LocationInput) (*domain.Location, error) {
	return nil, nil
}

func (s *stubLocationService) Delete(context.Context, string) error { return nil }

const validLocationBody = `{
	"name":"Central Park",
	"latitude":0,
	"longitude":0,
	"type":"park",
	"pollution":"low",
	"safety":"high",
	"touristAttraction":true,
	"crimeRate":0,
	"costOfLiving":"MEDIUM"
}`

func TestLocationHandler_Create_ZeroCoordinatesAllowed(t *testing.T) {
	e := echo.New()
	var got ports.LocationInput
	stub := &stubLocationService{
		createFn: func(_ context.Context, in ports.LocationInput) (*domain.Location, error) {
			got = in
			return &domain.Location{ID: "loc-1", Name: in.Name}, nil
		},
	}
	h := NewLocationHandler(stub)

	// A location on the equator and prime meridian with a zero crime rate is
	// a complete payload.
	c, rec := newJSONContext(e, http.MethodPost, "/maps", validLocationBody)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Latitude != 0 || got.Longitude != 0 || got.CrimeRate != 0 {
		t.Fatalf("zero values lost: %+v", got)
	}
}

func TestLocationHandler_Create_MissingField(t *testing.T) {
	e := echo.New()
	h := NewLocationHandler(&stubLocationService{
		createFn: func(context.Context, ports.LocationInput) (*domain.Location, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	c, rec := newJSONContext(e, http.MethodPost, "/maps",
		`{"name":"No Coordinates","type":"park","pollution":"low","safety":"high","touristAttraction":true,"crimeRate":1.2,"costOfLiving":"LOW"}`)

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

func TestLocationHandler_Create_InvalidCostOfLiving(t *testing.T) {
	e := echo.New()
	h := NewLocationHandler(&stubLocationService{
		createFn: func(context.Context, ports.LocationInput) (*domain.Location, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})

	body := `{"name":"X","latitude":1,"longitude":2,"type":"park","pollution":"low","safety":"high","touristAttraction":false,"crimeRate":1,"costOfLiving":"EXTREME"}`
	c, rec := newJSONContext(e, http.MethodPost, "/maps", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLocationHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	h := NewLocationHandler(&stubLocationService{
		getFn: func(context.Context, string) (*domain.Location, error) {
			return nil, domain.ErrLocationNotFound
		},
	})

	c, rec := newJSONContext(e, http.MethodGet, "/maps/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeBody(t, rec); resp["error"] != "Location not found" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestLocationHandler_List_Envelope(t *testing.T) {
	e := echo.New()
	h := NewLocationHandler(&stubLocationService{})

	c, rec := newJSONContext(e, http.MethodGet, "/maps/locations", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if _, ok := resp["locations"].([]any); !ok {
		t.Fatalf("expected locations envelope, got %v", resp)
	}
}
