package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// StatsHandler serves the admin dashboard summary.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

type statsResponse struct {
	Users       int64 `json:"users"`
	Locations   int64 `json:"locations"`
	Reviews     int64 `json:"reviews"`
	Assessments int64 `json:"assessments"`
	Images      int64 `json:"images"`
}

// Summary returns record counts across all stores. Admin only.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *StatsHandler) Summary(c echo.Context) error {
	stats, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		Users:       stats.Users,
		Locations:   stats.Locations,
		Reviews:     stats.Reviews,
		Assessments: stats.Assessments,
		Images:      stats.Images,
	})
}
