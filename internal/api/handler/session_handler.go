package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// TokenIssuer signs the token that carries a session scope id.
type TokenIssuer interface {
	Issue(session *domain.Session) (string, error)
}

type SessionHandler struct {
	sessions ports.SessionManager
	tokens   TokenIssuer
}

func NewSessionHandler(sessions ports.SessionManager, tokens TokenIssuer) *SessionHandler {
	return &SessionHandler{sessions: sessions, tokens: tokens}
}

// Login opens a session in a new scope and returns its bearer token.
//
// @Summary      Login
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/sessions [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sess, err := h.sessions.Login(c.Request().Context(), uuid.NewString(), req.Username, req.Password)
	if err != nil {
		return err
	}

	token, err := h.tokens.Issue(sess)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{Token: token, Account: toAccountResponse(sess.Account)})
}

// Current returns the signed-in account.
//
// @Summary      Current session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/sessions/current [get]
func (h *SessionHandler) Current(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Account: toAccountResponse(sess.Account)})
}

// Logout ends the session; its token stops working immediately.
//
// @Summary      Logout
// @Tags         sessions
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /v1/sessions/current [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Logout(c.Request().Context(), sess.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
