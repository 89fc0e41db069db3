package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// LocationHandler handles the /maps route family.
type LocationHandler struct {
	service ports.LocationService
}

func NewLocationHandler(service ports.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// locationRequest uses pointers for numeric fields so that a legitimate zero
// (the equator, a crime-free area) is distinguishable from an omitted field.
type locationRequest struct {
	Name              string   `json:"name"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	Type              string   `json:"type"`
	Pollution         string   `json:"pollution"`
	Safety            string   `json:"safety"`
	TouristAttraction *bool    `json:"touristAttraction"`
	CrimeRate         *float64 `json:"crimeRate"`
	CostOfLiving      string   `json:"costOfLiving"`
}

func (r *locationRequest) complete() bool {
	return r.Name != "" && r.Latitude != nil && r.Longitude != nil &&
		r.Type != "" && r.CrimeRate != nil && r.CostOfLiving != ""
}

func (r *locationRequest) toInput() ports.LocationInput {
	in := ports.LocationInput{
		Name:         r.Name,
		Latitude:     *r.Latitude,
		Longitude:    *r.Longitude,
		Type:         r.Type,
		Pollution:    r.Pollution,
		Safety:       r.Safety,
		CrimeRate:    *r.CrimeRate,
		CostOfLiving: r.CostOfLiving,
	}
	if r.TouristAttraction != nil {
		in.TouristAttraction = *r.TouristAttraction
	}
	return in
}

// Create adds a location to the map.
//
// @Summary      Add a map location
// @Tags         maps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      locationRequest  true  "Location details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /maps/locations [post]
func (h *LocationHandler) Create(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if !req.complete() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "All fields are required"})
	}
	if !domain.CostOfLiving(req.CostOfLiving).IsValid() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "costOfLiving must be LOW, MEDIUM or HIGH"})
	}

	loc, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Location added successfully",
		"location": loc,
	})
}

// List returns every stored location.
//
// @Summary      List map locations
// @Tags         maps
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  errorResponse
// @Router       /maps/locations [get]
func (h *LocationHandler) List(c echo.Context) error {
	locations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"locations": locations})
}

// Get returns a single location by id.
//
// @Summary      Get a map location
// @Tags         maps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Location ID"
// @Success      200  {object}  domain.Location
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /maps/locations/{id} [get]
func (h *LocationHandler) Get(c echo.Context) error {
	loc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Location not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, loc)
}

// Update replaces all mutable fields of a location.
//
// @Summary      Update a map location
// @Tags         maps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Location ID"
// @Param        body  body      locationRequest  true  "New location details"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /maps/locations/{id} [put]
func (h *LocationHandler) Update(c echo.Context) error {
	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if !req.complete() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "All fields are required"})
	}

	loc, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Location not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Location updated successfully",
		"location": loc,
	})
}

// Delete removes a location.
//
// @Summary      Delete a map location
// @Tags         maps
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Location ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /maps/locations/{id} [delete]
func (h *LocationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Location not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Location deleted successfully"})
}
