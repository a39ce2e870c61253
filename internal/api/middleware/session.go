package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// Session resolves the sid set by Auth to the live session and stores it
// under "session". A token whose session was logged out is rejected.
func Session(sessions ports.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, _ := c.Get("sid").(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			sess, err := sessions.Current(c.Request().Context(), sid)
			if errors.Is(err, domain.ErrNoSession) {
				return echo.NewHTTPError(http.StatusUnauthorized, "session ended")
			}
			if err != nil {
				return err
			}

			c.Set("session", sess)
			return next(c)
		}
	}
}
