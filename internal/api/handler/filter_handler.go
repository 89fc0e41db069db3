package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// FilterHandler handles the /categories route family.
type FilterHandler struct {
	service ports.FilterService
}

func NewFilterHandler(service ports.FilterService) *FilterHandler {
	return &FilterHandler{service: service}
}

type filterRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create adds a category filter.
//
// @Summary      Create a category filter
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      filterRequest  true  "Filter details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /categories/filters [post]
func (h *FilterHandler) Create(c echo.Context) error {
	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Filter name is required"})
	}

	filter, err := h.service.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Filter created successfully",
		"filter":  filter,
	})
}

// List returns every category filter.
//
// @Summary      List category filters
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  errorResponse
// @Router       /categories/filters [get]
func (h *FilterHandler) List(c echo.Context) error {
	filters, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if filters == nil {
		filters = []domain.Filter{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"filters": filters})
}

// Update edits a category filter. Fields left empty keep their stored value.
//
// @Summary      Update a category filter
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Filter ID"
// @Param        body  body      filterRequest  true  "New filter fields"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /categories/filters/{id} [put]
func (h *FilterHandler) Update(c echo.Context) error {
	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	filter, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrFilterNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Filter not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Filter updated successfully",
		"filter":  filter,
	})
}

// Delete removes a category filter.
//
// @Summary      Delete a category filter
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Filter ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /categories/filters/{id} [delete]
func (h *FilterHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrFilterNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Filter not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Filter deleted successfully"})
}
