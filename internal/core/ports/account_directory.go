package ports

import (
	"context"

	"github.com/99minutos/reservation-system/internal/core/domain"
)

// AccountDirectory creates and looks up accounts keyed by username.
type AccountDirectory interface {
	Create(ctx context.Context, displayName, username, password string, role domain.Role) (*domain.Account, error)
	// FindByCredentials returns domain.ErrAccountNotFound unless an account
	// exists for username and its password matches exactly.
	FindByCredentials(ctx context.Context, username, password string) (*domain.Account, error)
}
