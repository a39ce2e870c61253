package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/99minutos/reservation-system/internal/core/service"
	"github.com/99minutos/reservation-system/internal/ui"
)

// SessionCookie holds the signed session token of a browser.
const SessionCookie = "reservas_session"

// TokenCodec issues and verifies session tokens.
type TokenCodec interface {
	TokenIssuer
	Parse(raw string) (*service.SessionClaims, error)
}

// UIHandler serves the HTML page. Each browser is one session scope,
// identified by the sid inside its cookie.
type UIHandler struct {
	ui           *ui.Controller
	tokens       TokenCodec
	secureCookie bool
}

func NewUIHandler(controller *ui.Controller, tokens TokenCodec, secureCookie bool) *UIHandler {
	return &UIHandler{ui: controller, tokens: tokens, secureCookie: secureCookie}
}

type registerForm struct {
	Name     string `form:"name"`
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

type loginForm struct {
	Username string `form:"loginUsername"`
	Password string `form:"loginPassword"`
}

type descriptionForm struct {
	Description string `form:"description"`
}

func (h *UIHandler) Index(c echo.Context) error {
	sid := h.sid(c)
	if sid == "" {
		return h.render(c, ui.View{Screen: ui.ScreenAuth})
	}
	view, err := h.ui.Load(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return h.render(c, view)
}

func (h *UIHandler) Register(c echo.Context) error {
	var f registerForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	view, err := h.ui.Register(c.Request().Context(), ui.RegisterForm{
		Name:     f.Name,
		Username: f.Username,
		Password: f.Password,
		Role:     f.Role,
	})
	if err != nil {
		return err
	}
	return h.render(c, view)
}

func (h *UIHandler) Login(c echo.Context) error {
	var f loginForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	sid := h.sid(c)
	if sid == "" {
		sid = uuid.NewString()
	}

	view, sess, err := h.ui.Login(c.Request().Context(), sid, ui.LoginForm{Username: f.Username, Password: f.Password})
	if err != nil {
		return err
	}
	if sess != nil {
		token, err := h.tokens.Issue(sess)
		if err != nil {
			return err
		}
		c.SetCookie(h.cookie(token, 0))
	}
	return h.render(c, view)
}

func (h *UIHandler) Logout(c echo.Context) error {
	view := ui.View{Screen: ui.ScreenAuth}
	if sid := h.sid(c); sid != "" {
		var err error
		if view, err = h.ui.Logout(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	c.SetCookie(h.cookie("", -1))
	return h.render(c, view)
}

func (h *UIHandler) CreateReservation(c echo.Context) error {
	var f descriptionForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	sid := h.sid(c)
	if sid == "" {
		return h.renderNoSession(c)
	}
	view, err := h.ui.CreateReservation(c.Request().Context(), sid, f.Description)
	if err != nil {
		return err
	}
	return h.render(c, view)
}

func (h *UIHandler) EditReservation(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var f descriptionForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	sid := h.sid(c)
	if sid == "" {
		return h.renderNoSession(c)
	}
	view, err := h.ui.EditReservation(c.Request().Context(), sid, id, f.Description)
	if err != nil {
		return err
	}
	return h.render(c, view)
}

func (h *UIHandler) DeleteReservation(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	sid := h.sid(c)
	if sid == "" {
		return h.renderNoSession(c)
	}
	view, err := h.ui.DeleteReservation(c.Request().Context(), sid, id)
	if err != nil {
		return err
	}
	return h.render(c, view)
}

func (h *UIHandler) render(c echo.Context, view ui.View) error {
	return c.Render(http.StatusOK, ui.PageTemplate, view)
}

// renderNoSession answers a browser that has no valid session cookie.
func (h *UIHandler) renderNoSession(c echo.Context) error {
	return h.render(c, ui.View{Screen: ui.ScreenAuth, Alert: ui.AlertNoSession})
}

// sid returns the browser's scope id, or "" when the cookie is missing or
// invalid. "" never reaches the controller: it would address the default
// scope, which no browser owns.
func (h *UIHandler) sid(c echo.Context) string {
	ck, err := c.Cookie(SessionCookie)
	if err != nil || ck.Value == "" {
		return ""
	}
	claims, err := h.tokens.Parse(ck.Value)
	if err != nil {
		return ""
	}
	return claims.SessionID
}

func (h *UIHandler) cookie(value string, maxAge int) *http.Cookie {
	ck := &http.Cookie{
		Name:     SessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
	if maxAge < 0 {
		ck.Expires = time.Unix(0, 0)
	}
	return ck
}
