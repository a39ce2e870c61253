package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/reservation-system/internal/core/domain"
)

// RequireRole must run after Session. It checks the role of the live
// session, never the role claim inside the token, so a token issued before
// its scope was signed in again as someone else cannot keep admin rights.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get("session").(*domain.Session)
			if sess == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}
			for _, r := range roles {
				if sess.Account.Role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
		}
	}
}
