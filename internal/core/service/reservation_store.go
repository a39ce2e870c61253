package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// ReservationStore keeps every reservation in one JSON list under the
// "reservas" key. Each call reads the whole list, changes it in memory and
// writes it back; calls are serialized within the process only.
type ReservationStore struct {
	kv  ports.KeyValueStore
	log zerolog.Logger
	now func() time.Time

	mu sync.Mutex
}

// ReservationStoreOption customises a ReservationStore.
type ReservationStoreOption func(*ReservationStore)

// WithClock overrides the time source used to derive reservation ids.
func WithClock(now func() time.Time) ReservationStoreOption {
	return func(s *ReservationStore) { s.now = now }
}

func NewReservationStore(kv ports.KeyValueStore, log zerolog.Logger, opts ...ReservationStoreOption) *ReservationStore {
	s := &ReservationStore{kv: kv, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append adds a reservation at the end of the list. Regular users become the
// owner; reservations created by an admin carry no owner.
func (s *ReservationStore) Append(ctx context.Context, description string, actor domain.Account) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := readReservations(ctx, s.kv)
	if err != nil {
		return nil, fmt.Errorf("append reservation: %w", err)
	}

	r := domain.Reservation{
		ID:          nextID(s.now(), list),
		Description: description,
	}
	if actor.Role == domain.RoleUser {
		r.Owner = actor.Username
	}

	list = append(list, r)
	if err := writeReservations(ctx, s.kv, list); err != nil {
		return nil, fmt.Errorf("append reservation: %w", err)
	}

	s.log.Info().Int64("id", r.ID).Str("actor", actor.Username).Msg("reservation created")
	return &r, nil
}

func (s *ReservationStore) Remove(ctx context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := readReservations(ctx, s.kv)
	if err != nil {
		return 0, fmt.Errorf("remove reservation: %w", err)
	}

	kept := list[:0]
	for _, r := range list {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	removed := len(list) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := writeReservations(ctx, s.kv, kept); err != nil {
		return 0, fmt.Errorf("remove reservation: %w", err)
	}

	s.log.Info().Int64("id", id).Int("removed", removed).Msg("reservation removed")
	return removed, nil
}

func (s *ReservationStore) Update(ctx context.Context, id int64, patch domain.ReservationPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := readReservations(ctx, s.kv)
	if err != nil {
		return false, fmt.Errorf("update reservation: %w", err)
	}

	found := false
	for i := range list {
		if list[i].ID == id {
			list[i] = patch.Apply(list[i])
			found = true
		}
	}
	if !found {
		return false, nil
	}

	if err := writeReservations(ctx, s.kv, list); err != nil {
		return false, fmt.Errorf("update reservation: %w", err)
	}

	s.log.Info().Int64("id", id).Msg("reservation updated")
	return true, nil
}

func (s *ReservationStore) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	list, err := readReservations(ctx, s.kv)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return list, nil
}

// nextID derives the id from the clock in milliseconds, bumped past the
// largest id already stored so ids never repeat within the list.
func nextID(now time.Time, list []domain.Reservation) int64 {
	id := now.UnixMilli()
	for _, r := range list {
		if r.ID >= id {
			id = r.ID + 1
		}
	}
	return id
}
