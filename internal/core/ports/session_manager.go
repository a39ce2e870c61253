package ports

import (
	"context"

	"github.com/99minutos/reservation-system/internal/core/domain"
)

// SessionManager tracks the signed-in account of each session scope.
type SessionManager interface {
	Login(ctx context.Context, sid, username, password string) (*domain.Session, error)
	Logout(ctx context.Context, sid string) error
	Current(ctx context.Context, sid string) (*domain.Session, error)
}
