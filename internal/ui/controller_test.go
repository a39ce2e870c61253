package ui

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/service"
	"github.com/99minutos/reservation-system/internal/infrastructure/kv/memory"
)

func newController() *Controller {
	log := zerolog.Nop()
	kv := memory.NewStore()
	accounts := service.NewAccountDirectory(kv, log)
	sessions := service.NewSessionManager(accounts, kv, log)
	reservations := service.NewReservationService(service.NewReservationStore(kv, log), log)
	return NewController(accounts, sessions, reservations, log)
}

func register(t *testing.T, c *Controller, username, password, role string) {
	t.Helper()
	v, err := c.Register(context.Background(), RegisterForm{Name: username, Username: username, Password: password, Role: role})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	if v.Alert != AlertRegistered {
		t.Fatalf("register %s: unexpected alert %q", username, v.Alert)
	}
}

func TestController_Load_NoSession(t *testing.T) {
	c := newController()

	v, err := c.Load(context.Background(), "browser-1")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if v.Screen != ScreenAuth || v.Alert != "" {
		t.Fatalf("unexpected view: %+v", v)
	}
}

func TestController_Register(t *testing.T) {
	c := newController()
	ctx := context.Background()

	register(t, c, "ana", "pw2", "user")

	v, err := c.Register(ctx, RegisterForm{Username: "ana", Password: "x", Role: "admin"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if v.Screen != ScreenAuth || v.Alert != AlertAccountExists {
		t.Fatalf("unexpected view for duplicate: %+v", v)
	}

	v, _ = c.Register(ctx, RegisterForm{Username: "bob", Password: "x", Role: "root"})
	if v.Alert != AlertInvalidRole {
		t.Fatalf("unexpected alert for bad role: %q", v.Alert)
	}

	v, _ = c.Register(ctx, RegisterForm{Username: "", Password: "x", Role: "user"})
	if v.Alert != AlertInvalidAccount {
		t.Fatalf("unexpected alert for empty username: %q", v.Alert)
	}

	// registering does not sign in
	v, _ = c.Load(ctx, "")
	if v.Screen != ScreenAuth {
		t.Fatalf("expected auth screen after register, got %s", v.Screen)
	}
}

func TestController_Login(t *testing.T) {
	c := newController()
	ctx := context.Background()
	register(t, c, "ana", "pw2", "user")

	v, sess, err := c.Login(ctx, "b1", LoginForm{Username: "ana", Password: "wrong"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if sess != nil || v.Screen != ScreenAuth || v.Alert != AlertLoginFailed {
		t.Fatalf("unexpected failed login result: %+v %+v", v, sess)
	}

	v, _, _ = c.Login(ctx, "b1", LoginForm{Username: "nobody", Password: "pw2"})
	if v.Alert != AlertLoginFailed {
		t.Fatalf("unknown user must give the same alert, got %q", v.Alert)
	}

	v, sess, err = c.Login(ctx, "b1", LoginForm{Username: "ana", Password: "pw2"})
	if err != nil || sess == nil {
		t.Fatalf("Login = %+v, %v", sess, err)
	}
	if v.Screen != ScreenReservations || v.Account.Username != "ana" {
		t.Fatalf("unexpected view: %+v", v)
	}

	v, _ = c.Load(ctx, "b1")
	if v.Screen != ScreenReservations {
		t.Fatalf("reload must keep the reservation screen, got %s", v.Screen)
	}
	v, _ = c.Load(ctx, "b2")
	if v.Screen != ScreenAuth {
		t.Fatalf("another browser must not share the session, got %s", v.Screen)
	}
}

func TestController_Logout(t *testing.T) {
	c := newController()
	ctx := context.Background()
	register(t, c, "ana", "pw2", "user")
	_, _, _ = c.Login(ctx, "b1", LoginForm{Username: "ana", Password: "pw2"})

	v, err := c.Logout(ctx, "b1")
	if err != nil || v.Screen != ScreenAuth {
		t.Fatalf("Logout = %+v, %v", v, err)
	}
	v, _ = c.Load(ctx, "b1")
	if v.Screen != ScreenAuth {
		t.Fatalf("expected auth screen after logout, got %s", v.Screen)
	}
}

func TestController_CreateReservation(t *testing.T) {
	c := newController()
	ctx := context.Background()
	register(t, c, "ana", "pw2", "user")

	v, err := c.CreateReservation(ctx, "b1", "Desk 3")
	if err != nil {
		t.Fatalf("CreateReservation returned error: %v", err)
	}
	if v.Screen != ScreenReservations || v.Alert != AlertNoSession || len(v.Items) != 0 {
		t.Fatalf("unexpected view without session: %+v", v)
	}

	_, _, _ = c.Login(ctx, "b1", LoginForm{Username: "ana", Password: "pw2"})
	v, err = c.CreateReservation(ctx, "b1", "Desk 3")
	if err != nil {
		t.Fatalf("CreateReservation returned error: %v", err)
	}
	if len(v.Items) != 1 {
		t.Fatalf("expected one item, got %+v", v.Items)
	}
	item := v.Items[0]
	if item.Text != "Reserva: Desk 3 - Usuario: ana" || item.Editable {
		t.Fatalf("unexpected item: %+v", item)
	}

	v, _ = c.CreateReservation(ctx, "b1", "  ")
	if v.Alert != AlertEmptyDescription || len(v.Items) != 1 {
		t.Fatalf("blank description must alert without creating: %+v", v)
	}
}

func TestController_AdminEditAndDelete(t *testing.T) {
	c := newController()
	ctx := context.Background()
	register(t, c, "boss", "pw1", "admin")
	register(t, c, "ana", "pw2", "user")

	_, _, _ = c.Login(ctx, "user-tab", LoginForm{Username: "ana", Password: "pw2"})
	_, _ = c.CreateReservation(ctx, "user-tab", "Desk 3")

	_, _, _ = c.Login(ctx, "admin-tab", LoginForm{Username: "boss", Password: "pw1"})
	v, _ := c.CreateReservation(ctx, "admin-tab", "Room A")
	if len(v.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", v.Items)
	}
	if v.Items[1].Text != "Reserva: Room A - Usuario: " {
		t.Fatalf("admin item must show a blank user: %q", v.Items[1].Text)
	}
	for _, it := range v.Items {
		if !it.Editable {
			t.Fatalf("admin must see edit controls: %+v", it)
		}
	}

	deskID := v.Items[0].ID

	// the regular user is refused even when calling the action directly
	uv, err := c.DeleteReservation(ctx, "user-tab", deskID)
	if err != nil || uv.Alert != AlertForbidden || len(uv.Items) != 2 {
		t.Fatalf("user delete must be forbidden: %+v %v", uv, err)
	}

	v, err = c.EditReservation(ctx, "admin-tab", deskID, "Desk 5")
	if err != nil || v.Alert != "" {
		t.Fatalf("EditReservation = %+v, %v", v, err)
	}
	if v.Items[0].Text != "Reserva: Desk 5 - Usuario: ana" {
		t.Fatalf("unexpected item after edit: %q", v.Items[0].Text)
	}

	v, err = c.DeleteReservation(ctx, "admin-tab", deskID)
	if err != nil || len(v.Items) != 1 {
		t.Fatalf("DeleteReservation = %+v, %v", v, err)
	}

	v, _ = c.DeleteReservation(ctx, "admin-tab", deskID)
	if v.Alert != AlertNotFound {
		t.Fatalf("expected not-found alert, got %q", v.Alert)
	}
}

func TestItemText(t *testing.T) {
	got := ItemText(domain.Reservation{ID: 1, Description: "Room A"})
	if got != "Reserva: Room A - Usuario: " {
		t.Fatalf("unexpected text %q", got)
	}
}
