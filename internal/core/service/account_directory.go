package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// AccountDirectory stores one account record per username key.
type AccountDirectory struct {
	kv  ports.KeyValueStore
	log zerolog.Logger

	mu sync.Mutex // serializes the exists-check and write in Create
}

func NewAccountDirectory(kv ports.KeyValueStore, log zerolog.Logger) *AccountDirectory {
	return &AccountDirectory{kv: kv, log: log}
}

// Create registers a new account. An existing account with the same
// username is left untouched and ErrAccountExists is returned.
func (d *AccountDirectory) Create(ctx context.Context, displayName, username, password string, role domain.Role) (*domain.Account, error) {
	if username == "" || password == "" || isReservedUsername(username) {
		return nil, domain.ErrInvalidAccount
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := d.kv.Get(ctx, username)
	switch {
	case err == nil:
		return nil, domain.ErrAccountExists
	case !errors.Is(err, ports.ErrKeyNotFound):
		return nil, fmt.Errorf("create account: %w", err)
	}

	account := domain.Account{
		DisplayName: displayName,
		Username:    username,
		Password:    password,
		Role:        role,
	}
	if err := writeAccount(ctx, d.kv, username, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	d.log.Info().Str("username", username).Str("role", string(role)).Msg("account registered")
	return &account, nil
}

// FindByCredentials compares the password byte for byte; there is no hashing.
func (d *AccountDirectory) FindByCredentials(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || isReservedUsername(username) {
		return nil, domain.ErrAccountNotFound
	}

	account, err := readAccount(ctx, d.kv, username)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	if account.Password != password {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}
