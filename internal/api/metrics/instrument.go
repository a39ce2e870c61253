package metrics

import (
	"context"
	"errors"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// The wrappers below count successful operations on the shared services,
// so the JSON API and the HTML page report through the same counters.

type accounts struct {
	next ports.AccountDirectory
}

// InstrumentAccounts counts registrations by role.
func InstrumentAccounts(next ports.AccountDirectory) ports.AccountDirectory {
	return &accounts{next: next}
}

func (a *accounts) Create(ctx context.Context, displayName, username, password string, role domain.Role) (*domain.Account, error) {
	acc, err := a.next.Create(ctx, displayName, username, password, role)
	if err == nil {
		AccountsRegisteredTotal.WithLabelValues(string(acc.Role)).Inc()
	}
	return acc, err
}

func (a *accounts) FindByCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	return a.next.FindByCredentials(ctx, username, password)
}

type sessions struct {
	next ports.SessionManager
}

// InstrumentSessions counts logins by result. Store failures are not
// login attempts and are not counted.
func InstrumentSessions(next ports.SessionManager) ports.SessionManager {
	return &sessions{next: next}
}

func (s *sessions) Login(ctx context.Context, sid, username, password string) (*domain.Session, error) {
	sess, err := s.next.Login(ctx, sid, username, password)
	switch {
	case err == nil:
		LoginsTotal.WithLabelValues("success").Inc()
	case errors.Is(err, domain.ErrAuthenticationFailed):
		LoginsTotal.WithLabelValues("failure").Inc()
	}
	return sess, err
}

func (s *sessions) Logout(ctx context.Context, sid string) error {
	return s.next.Logout(ctx, sid)
}

func (s *sessions) Current(ctx context.Context, sid string) (*domain.Session, error) {
	return s.next.Current(ctx, sid)
}

type reservations struct {
	next ports.ReservationService
}

// InstrumentReservations counts successful changes by operation and the
// acting role.
func InstrumentReservations(next ports.ReservationService) ports.ReservationService {
	return &reservations{next: next}
}

func (r *reservations) List(ctx context.Context, session *domain.Session) ([]domain.Reservation, error) {
	return r.next.List(ctx, session)
}

func (r *reservations) Create(ctx context.Context, session *domain.Session, description string) (*domain.Reservation, error) {
	res, err := r.next.Create(ctx, session, description)
	if err == nil {
		countChange("create", session)
	}
	return res, err
}

func (r *reservations) Edit(ctx context.Context, session *domain.Session, id int64, patch domain.ReservationPatch) error {
	err := r.next.Edit(ctx, session, id, patch)
	if err == nil {
		countChange("update", session)
	}
	return err
}

func (r *reservations) Delete(ctx context.Context, session *domain.Session, id int64) error {
	err := r.next.Delete(ctx, session, id)
	if err == nil {
		countChange("delete", session)
	}
	return err
}

func countChange(op string, session *domain.Session) {
	ReservationOperationsTotal.WithLabelValues(op, string(session.Account.Role)).Inc()
}
