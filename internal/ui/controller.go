// Package ui drives the two-screen reservation page: an authentication
// screen and a reservation screen. Every action returns the View to render
// next; failures become alerts instead of errors.
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

type Screen string

const (
	ScreenAuth         Screen = "auth"
	ScreenReservations Screen = "reservations"
)

// Alert texts shown to the user.
const (
	AlertRegistered       = "Usuario registrado exitosamente"
	AlertAccountExists    = "Usuario ya existe"
	AlertInvalidAccount   = "Ingrese un usuario y una contraseña válidos"
	AlertInvalidRole      = "El rol debe ser user o admin"
	AlertLoginFailed      = "Usuario o contraseña incorrectos"
	AlertNoSession        = "Debe iniciar sesión para crear una reserva"
	AlertEmptyDescription = "Ingrese la descripción de la reserva"
	AlertForbidden        = "Solo un administrador puede modificar reservas"
	AlertNotFound         = "La reserva ya no existe"
)

// View is everything the page template needs.
type View struct {
	Screen  Screen
	Alert   string
	Account *domain.Account
	Items   []Item
}

// Item is one rendered reservation. Editable items get Edit and Delete controls.
type Item struct {
	ID          int64
	Description string
	Owner       string
	Text        string
	Editable    bool
}

type RegisterForm struct {
	Name     string
	Username string
	Password string
	Role     string
}

type LoginForm struct {
	Username string
	Password string
}

type Controller struct {
	accounts     ports.AccountDirectory
	sessions     ports.SessionManager
	reservations ports.ReservationService
	log          zerolog.Logger
}

func NewController(
	accounts ports.AccountDirectory,
	sessions ports.SessionManager,
	reservations ports.ReservationService,
	log zerolog.Logger,
) *Controller {
	return &Controller{
		accounts:     accounts,
		sessions:     sessions,
		reservations: reservations,
		log:          log,
	}
}

// Load picks the initial screen: reservations when sid has a session.
func (c *Controller) Load(ctx context.Context, sid string) (View, error) {
	sess, err := c.current(ctx, sid)
	if err != nil {
		return View{}, err
	}
	if sess == nil {
		return View{Screen: ScreenAuth}, nil
	}
	return c.reservationView(ctx, sess, "")
}

// Register never signs the new account in.
func (c *Controller) Register(ctx context.Context, form RegisterForm) (View, error) {
	role, err := domain.ParseRole(form.Role)
	if err != nil {
		return View{Screen: ScreenAuth, Alert: AlertInvalidRole}, nil
	}

	_, err = c.accounts.Create(ctx, form.Name, form.Username, form.Password, role)
	switch {
	case err == nil:
		return View{Screen: ScreenAuth, Alert: AlertRegistered}, nil
	case errors.Is(err, domain.ErrAccountExists):
		return View{Screen: ScreenAuth, Alert: AlertAccountExists}, nil
	case errors.Is(err, domain.ErrInvalidAccount):
		return View{Screen: ScreenAuth, Alert: AlertInvalidAccount}, nil
	case errors.Is(err, domain.ErrInvalidRole):
		return View{Screen: ScreenAuth, Alert: AlertInvalidRole}, nil
	default:
		return View{}, err
	}
}

// Login returns the opened session so the caller can hand out a token.
func (c *Controller) Login(ctx context.Context, sid string, form LoginForm) (View, *domain.Session, error) {
	sess, err := c.sessions.Login(ctx, sid, form.Username, form.Password)
	if errors.Is(err, domain.ErrAuthenticationFailed) {
		return View{Screen: ScreenAuth, Alert: AlertLoginFailed}, nil, nil
	}
	if err != nil {
		return View{}, nil, err
	}

	view, err := c.reservationView(ctx, sess, "")
	if err != nil {
		return View{}, nil, err
	}
	return view, sess, nil
}

func (c *Controller) Logout(ctx context.Context, sid string) (View, error) {
	if err := c.sessions.Logout(ctx, sid); err != nil {
		return View{}, err
	}
	return View{Screen: ScreenAuth}, nil
}

// CreateReservation without a session only raises the alert; the screen stays put.
func (c *Controller) CreateReservation(ctx context.Context, sid, description string) (View, error) {
	sess, err := c.current(ctx, sid)
	if err != nil {
		return View{}, err
	}
	if sess == nil {
		return View{Screen: ScreenReservations, Alert: AlertNoSession}, nil
	}

	_, err = c.reservations.Create(ctx, sess, description)
	return c.afterMutation(ctx, sess, err)
}

func (c *Controller) EditReservation(ctx context.Context, sid string, id int64, description string) (View, error) {
	sess, err := c.current(ctx, sid)
	if err != nil {
		return View{}, err
	}
	if sess == nil {
		return View{Screen: ScreenAuth, Alert: AlertNoSession}, nil
	}

	err = c.reservations.Edit(ctx, sess, id, domain.ReservationPatch{Description: &description})
	return c.afterMutation(ctx, sess, err)
}

func (c *Controller) DeleteReservation(ctx context.Context, sid string, id int64) (View, error) {
	sess, err := c.current(ctx, sid)
	if err != nil {
		return View{}, err
	}
	if sess == nil {
		return View{Screen: ScreenAuth, Alert: AlertNoSession}, nil
	}

	err = c.reservations.Delete(ctx, sess, id)
	return c.afterMutation(ctx, sess, err)
}

// afterMutation re-renders the reservation screen, turning known failures into alerts.
func (c *Controller) afterMutation(ctx context.Context, sess *domain.Session, err error) (View, error) {
	alert := ""
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidReservation):
		alert = AlertEmptyDescription
	case errors.Is(err, domain.ErrForbidden):
		alert = AlertForbidden
	case errors.Is(err, domain.ErrReservationNotFound):
		alert = AlertNotFound
	default:
		return View{}, err
	}
	return c.reservationView(ctx, sess, alert)
}

func (c *Controller) current(ctx context.Context, sid string) (*domain.Session, error) {
	sess, err := c.sessions.Current(ctx, sid)
	if errors.Is(err, domain.ErrNoSession) {
		return nil, nil
	}
	return sess, err
}

func (c *Controller) reservationView(ctx context.Context, sess *domain.Session, alert string) (View, error) {
	list, err := c.reservations.List(ctx, sess)
	if err != nil {
		return View{}, err
	}

	account := sess.Account
	items := make([]Item, 0, len(list))
	for _, r := range list {
		items = append(items, Item{
			ID:          r.ID,
			Description: r.Description,
			Owner:       r.Owner,
			Text:        ItemText(r),
			Editable:    account.IsAdmin(),
		})
	}
	return View{Screen: ScreenReservations, Alert: alert, Account: &account, Items: items}, nil
}

// ItemText is the list entry shown for a reservation; admin-created
// reservations show a blank user.
func ItemText(r domain.Reservation) string {
	return fmt.Sprintf("Reserva: %s - Usuario: %s", r.Description, r.Owner)
}
