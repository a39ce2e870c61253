package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/reservation-system/internal/core/service"
)

// TokenParser verifies a session token.
type TokenParser interface {
	Parse(raw string) (*service.SessionClaims, error)
}

// Auth validates the session token and injects its claims into context.
// The token is read from the Authorization header, falling back to cookie
// when cookie is non-empty.
func Auth(tokens TokenParser, cookie string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c, cookie)
			if err != nil {
				return err
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("sid", claims.SessionID)
			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

func bearerToken(c echo.Context, cookie string) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		if cookie != "" {
			if ck, err := c.Cookie(cookie); err == nil && ck.Value != "" {
				return ck.Value, nil
			}
		}
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
