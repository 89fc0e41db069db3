package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/api/middleware"
)

// principalID extracts the authenticated user id injected by the Auth
// middleware. A missing id means the middleware did not run on this route,
// which is a wiring bug surfaced as 401 rather than a panic.
func principalID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "User not logged in")
	}
	return userID, nil
}
