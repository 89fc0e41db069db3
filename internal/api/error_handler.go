package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Handlers map most of
	// these inline to control the exact message; this is the backstop for
	// errors that escape a handler.
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "No user found"
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized, "Wrong password"
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden, "Unauthorized"
	case errors.Is(err, domain.ErrLocationNotFound):
		return http.StatusNotFound, "Location not found"
	case errors.Is(err, domain.ErrFilterNotFound):
		return http.StatusNotFound, "Filter not found"
	case errors.Is(err, domain.ErrAssessmentNotFound):
		return http.StatusNotFound, "No assessments found for this location"
	case errors.Is(err, domain.ErrImageMetaNotFound):
		return http.StatusNotFound, "No image metadata found for this location"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}
