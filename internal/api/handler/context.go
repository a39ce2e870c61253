package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/reservation-system/internal/core/domain"
)

// SessionContextKey is where the Session middleware stores the live session.
const SessionContextKey = "session"

// ctxSession returns the session injected by the Session middleware. Its
// absence means the route was registered without authentication.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(SessionContextKey).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}

func paramID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}
	return id, nil
}
