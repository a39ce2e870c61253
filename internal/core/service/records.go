package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// Fixed keys shared with the account keyspace.
const (
	sessionKey      = "session"
	reservationsKey = "reservas"
)

// accountRecord is the stored shape of an account, both under <username>
// and as the session copy.
type accountRecord struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func toAccountRecord(a domain.Account) accountRecord {
	return accountRecord{
		Name:     a.DisplayName,
		Username: a.Username,
		Password: a.Password,
		Role:     string(a.Role),
	}
}

// toDomain maps a stored record back. Roles other than "admin" read back as
// user, matching records written before roles were validated.
func (r accountRecord) toDomain() *domain.Account {
	role := domain.RoleUser
	if r.Role == string(domain.RoleAdmin) {
		role = domain.RoleAdmin
	}
	return &domain.Account{
		DisplayName: r.Name,
		Username:    r.Username,
		Password:    r.Password,
		Role:        role,
	}
}

// isReservedUsername reports whether username would collide with a fixed key.
func isReservedUsername(username string) bool {
	return username == sessionKey ||
		username == reservationsKey ||
		strings.HasPrefix(username, sessionKey+":")
}

func readAccount(ctx context.Context, kv ports.KeyValueStore, key string) (*domain.Account, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var rec accountRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode account %q: %w", key, err)
	}
	return rec.toDomain(), nil
}

func writeAccount(ctx context.Context, kv ports.KeyValueStore, key string, a domain.Account) error {
	b, err := json.Marshal(toAccountRecord(a))
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	return kv.Set(ctx, key, string(b))
}

// readReservations treats an absent key as the empty list.
func readReservations(ctx context.Context, kv ports.KeyValueStore) ([]domain.Reservation, error) {
	raw, err := kv.Get(ctx, reservationsKey)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return []domain.Reservation{}, nil
	}
	if err != nil {
		return nil, err
	}
	list := []domain.Reservation{}
	if strings.TrimSpace(raw) == "" || raw == "null" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}
	return list, nil
}

func writeReservations(ctx context.Context, kv ports.KeyValueStore, list []domain.Reservation) error {
	if list == nil {
		list = []domain.Reservation{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}
	return kv.Set(ctx, reservationsKey, string(b))
}
