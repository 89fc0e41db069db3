package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// FootpathHandler handles the /assessments route family.
type FootpathHandler struct {
	service ports.FootpathService
}

func NewFootpathHandler(service ports.FootpathService) *FootpathHandler {
	return &FootpathHandler{service: service}
}

type footpathRequest struct {
	LocationID      string `json:"locationId"`
	ImageURL        string `json:"imageURL"`
	CitizenFeedback string `json:"citizenFeedback"`
	AIAssessment    string `json:"aiAssessment"`
}

// Create stores a footpath assessment.
//
// @Summary      Create a footpath assessment
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      footpathRequest  true  "Assessment details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /assessments/footpathAssessments [post]
func (h *FootpathHandler) Create(c echo.Context) error {
	var req footpathRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.LocationID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Location ID is required"})
	}

	assessment, err := h.service.Create(c.Request().Context(), ports.FootpathInput{
		LocationID:      req.LocationID,
		ImageURL:        req.ImageURL,
		CitizenFeedback: req.CitizenFeedback,
		AIAssessment:    req.AIAssessment,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Assessment created successfully",
		"assessment": assessment,
	})
}

// ListByLocation returns all assessments for a location.
//
// @Summary      List assessments for a location
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Param        locationId  path      string  true  "Location ID"
// @Success      200         {object}  map[string]interface{}
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /assessments/footpathAssessments/location/{locationId} [get]
func (h *FootpathHandler) ListByLocation(c echo.Context) error {
	locationID := c.Param("locationId")
	if locationID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Location ID is required"})
	}

	assessments, err := h.service.ListByLocation(c.Request().Context(), locationID)
	if err != nil {
		if errors.Is(err, domain.ErrAssessmentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "No assessments found for this location"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"assessments": assessments})
}

// Update edits a footpath assessment.
//
// @Summary      Update a footpath assessment
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Assessment ID"
// @Param        body  body      footpathRequest  true  "New assessment fields"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /assessments/footpathAssessments/{id} [put]
func (h *FootpathHandler) Update(c echo.Context) error {
	var req footpathRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	assessment, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.FootpathInput{
		LocationID:      req.LocationID,
		ImageURL:        req.ImageURL,
		CitizenFeedback: req.CitizenFeedback,
		AIAssessment:    req.AIAssessment,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAssessmentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Assessment not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Assessment updated successfully",
		"assessment": assessment,
	})
}

// Delete removes a footpath assessment.
//
// @Summary      Delete a footpath assessment
// @Tags         assessments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Assessment ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /assessments/footpathAssessments/{id} [delete]
func (h *FootpathHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAssessmentNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Assessment not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Assessment deleted successfully"})
}
