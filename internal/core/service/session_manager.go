package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// SessionManager keeps a copy of the signed-in account under the session key
// of each scope: "session" for the default scope, "session:<sid>" otherwise.
type SessionManager struct {
	accounts ports.AccountDirectory
	kv       ports.KeyValueStore
	log      zerolog.Logger
}

func NewSessionManager(accounts ports.AccountDirectory, kv ports.KeyValueStore, log zerolog.Logger) *SessionManager {
	return &SessionManager{accounts: accounts, kv: kv, log: log}
}

// Login opens a session in scope sid, replacing any session already there.
// Wrong username and wrong password are indistinguishable to the caller.
func (m *SessionManager) Login(ctx context.Context, sid, username, password string) (*domain.Session, error) {
	account, err := m.accounts.FindByCredentials(ctx, username, password)
	if errors.Is(err, domain.ErrAccountNotFound) {
		m.log.Debug().Str("username", username).Msg("login rejected")
		return nil, domain.ErrAuthenticationFailed
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := writeAccount(ctx, m.kv, scopedSessionKey(sid), *account); err != nil {
		return nil, fmt.Errorf("login: store session: %w", err)
	}

	m.log.Info().Str("username", account.Username).Str("sid", sid).Msg("session opened")
	return &domain.Session{ID: sid, Account: *account}, nil
}

// Logout is idempotent.
func (m *SessionManager) Logout(ctx context.Context, sid string) error {
	if err := m.kv.Remove(ctx, scopedSessionKey(sid)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	m.log.Info().Str("sid", sid).Msg("session closed")
	return nil
}

// Current returns domain.ErrNoSession when the scope has no session.
func (m *SessionManager) Current(ctx context.Context, sid string) (*domain.Session, error) {
	account, err := readAccount(ctx, m.kv, scopedSessionKey(sid))
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}
	return &domain.Session{ID: sid, Account: *account}, nil
}

func scopedSessionKey(sid string) string {
	if sid == "" {
		return sessionKey
	}
	return sessionKey + ":" + sid
}
