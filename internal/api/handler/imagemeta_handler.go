package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// ImageMetaHandler handles the /images route family.
type ImageMetaHandler struct {
	service ports.ImageMetaService
}

func NewImageMetaHandler(service ports.ImageMetaService) *ImageMetaHandler {
	return &ImageMetaHandler{service: service}
}

type imageMetaRequest struct {
	LocationID  string   `json:"locationId"`
	ImageURL    string   `json:"imageURL"`
	Description string   `json:"description"`
	Labels      []string `json:"labels"`
}

// Upload stores image metadata. Records uploaded without labels are queued
// for asynchronous AI labeling.
//
// @Summary      Upload image metadata
// @Tags         images
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      imageMetaRequest  true  "Image metadata"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /images/image-metadata [post]
func (h *ImageMetaHandler) Upload(c echo.Context) error {
	var req imageMetaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.LocationID == "" || req.ImageURL == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "locationId and imageURL are required"})
	}

	image, err := h.service.Upload(c.Request().Context(), ports.ImageMetaInput{
		LocationID:  req.LocationID,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Labels:      req.Labels,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Image metadata uploaded successfully",
		"image":   image,
	})
}

// ListByLocation returns all image metadata for a location.
//
// @Summary      List image metadata for a location
// @Tags         images
// @Produce      json
// @Security     BearerAuth
// @Param        locationId  path      string  true  "Location ID"
// @Success      200         {object}  map[string]interface{}
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /images/image-metadata/{locationId} [get]
func (h *ImageMetaHandler) ListByLocation(c echo.Context) error {
	locationID := c.Param("locationId")
	if locationID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Location ID is required"})
	}

	images, err := h.service.ListByLocation(c.Request().Context(), locationID)
	if err != nil {
		if errors.Is(err, domain.ErrImageMetaNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "No image metadata found for this location"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"imageMetadata": images})
}

// Update edits an image metadata record.
//
// @Summary      Update image metadata
// @Tags         images
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Image ID"
// @Param        body  body      imageMetaRequest  true  "New metadata fields"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /images/image-metadata/{id} [put]
func (h *ImageMetaHandler) Update(c echo.Context) error {
	var req imageMetaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ImageURL == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "imageURL is required"})
	}

	image, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ImageMetaInput{
		LocationID:  req.LocationID,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Labels:      req.Labels,
	})
	if err != nil {
		if errors.Is(err, domain.ErrImageMetaNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Image metadata not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Image metadata updated successfully",
		"image":   image,
	})
}

// Delete removes an image metadata record.
//
// @Summary      Delete image metadata
// @Tags         images
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Image ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /images/image-metadata/{id} [delete]
func (h *ImageMetaHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrImageMetaNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Image metadata not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Image metadata deleted successfully"})
}
