package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// ReviewHandler handles the /opinions route family. Mutating routes enforce
// ownership: only the creator of a review may update or delete it.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

type reviewRequest struct {
	LocationID string `json:"locationId"`
	ReviewText string `json:"reviewText"`
	Rating     *int   `json:"rating"`
}

// Create stores a new review owned by the authenticated user.
//
// @Summary      Create a review
// @Tags         opinions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reviewRequest  true  "Review details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /opinions/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.LocationID == "" || req.ReviewText == "" || req.Rating == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "All fields are required"})
	}

	review, err := h.service.Create(c.Request().Context(), userID, ports.ReviewInput{
		LocationID: req.LocationID,
		ReviewText: req.ReviewText,
		Rating:     *req.Rating,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Review created successfully",
		"review":  review,
	})
}

// ListByLocation returns every review for a location.
//
// @Summary      List reviews for a location
// @Tags         opinions
// @Produce      json
// @Security     BearerAuth
// @Param        locationId  path      string  true  "Location ID"
// @Success      200         {object}  map[string]interface{}
// @Failure      401         {object}  errorResponse
// @Router       /opinions/locations/{locationId}/reviews [get]
func (h *ReviewHandler) ListByLocation(c echo.Context) error {
	reviews, err := h.service.ListByLocation(c.Request().Context(), c.Param("locationId"))
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"reviews": reviews})
}

// Update edits a review owned by the authenticated user. A review that does
// not exist and a review owned by someone else are indistinguishable to the
// caller: both answer 403.
//
// @Summary      Update own review
// @Tags         opinions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Review ID"
// @Param        body  body      reviewRequest  true  "New review fields"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /opinions/reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	rating := 0
	if req.Rating != nil {
		rating = *req.Rating
	}
	review, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), ports.ReviewInput{
		LocationID: req.LocationID,
		ReviewText: req.ReviewText,
		Rating:     rating,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotOwner) {
			return c.JSON(http.StatusForbidden, errorResponse{Error: "Unauthorized"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// Delete removes a review owned by the authenticated user.
//
// @Summary      Delete own review
// @Tags         opinions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /opinions/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotOwner) {
			return c.JSON(http.StatusForbidden, errorResponse{Error: "Unauthorized"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Review deleted successfully"})
}
