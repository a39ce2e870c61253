package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// ReservationService enforces who may do what with reservations:
// any signed-in account may list and create, only admins may edit or delete.
type ReservationService struct {
	store ports.ReservationStore
	log   zerolog.Logger
}

func NewReservationService(store ports.ReservationStore, log zerolog.Logger) *ReservationService {
	return &ReservationService{store: store, log: log}
}

func (s *ReservationService) List(ctx context.Context, session *domain.Session) ([]domain.Reservation, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}
	return s.store.ListAll(ctx)
}

func (s *ReservationService) Create(ctx context.Context, session *domain.Session, description string) (*domain.Reservation, error) {
	if session == nil {
		return nil, domain.ErrNoSession
	}
	if strings.TrimSpace(description) == "" {
		return nil, domain.ErrInvalidReservation
	}
	return s.store.Append(ctx, description, session.Account)
}

func (s *ReservationService) Edit(ctx context.Context, session *domain.Session, id int64, patch domain.ReservationPatch) error {
	if err := s.authorizeAdmin(session, "edit", id); err != nil {
		return err
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return domain.ErrInvalidReservation
	}

	found, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (s *ReservationService) Delete(ctx context.Context, session *domain.Session, id int64) error {
	if err := s.authorizeAdmin(session, "delete", id); err != nil {
		return err
	}

	n, err := s.store.Remove(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (s *ReservationService) authorizeAdmin(session *domain.Session, action string, id int64) error {
	if session == nil {
		return domain.ErrNoSession
	}
	if !session.Account.IsAdmin() {
		s.log.Warn().
			Str("username", session.Account.Username).
			Str("action", action).
			Int64("id", id).
			Msg("reservation change forbidden")
		return domain.ErrForbidden
	}
	return nil
}
