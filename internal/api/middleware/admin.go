package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citysphere/citysphere-api/internal/core/domain"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// RequireAdmin restricts a route to admin accounts. Tokens carry only the
// subject id, so the principal's role is loaded from the user store; a
// deleted subject fails the same way as a non-admin one.
func RequireAdmin(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(UserIDKey).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not logged in")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || user.Role != domain.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
			}
			return next(c)
		}
	}
}
