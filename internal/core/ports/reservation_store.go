package ports

import (
	"context"

	"github.com/99minutos/reservation-system/internal/core/domain"
)

// ReservationStore maintains the shared ordered list of reservations.
// It performs no authorization; callers go through ReservationService.
type ReservationStore interface {
	Append(ctx context.Context, description string, actor domain.Account) (*domain.Reservation, error)
	// Remove deletes every reservation with the given id and reports how many were removed.
	Remove(ctx context.Context, id int64) (int, error)
	// Update merges patch over every reservation with the given id and reports whether any matched.
	Update(ctx context.Context, id int64, patch domain.ReservationPatch) (bool, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
}

// ReservationService is the authorization gate in front of ReservationStore.
// Every call carries the caller's session explicitly.
type ReservationService interface {
	List(ctx context.Context, session *domain.Session) ([]domain.Reservation, error)
	Create(ctx context.Context, session *domain.Session, description string) (*domain.Reservation, error)
	Edit(ctx context.Context, session *domain.Session, id int64, patch domain.ReservationPatch) error
	Delete(ctx context.Context, session *domain.Session, id int64) error
}
