package domain

import "errors"

var (
	ErrAccountExists        = errors.New("account already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidAccount       = errors.New("invalid account data")
	ErrInvalidRole          = errors.New("role must be user or admin")
	ErrAuthenticationFailed = errors.New("incorrect username or password")
	ErrNoSession            = errors.New("no active session")
	ErrForbidden            = errors.New("access forbidden")
	ErrInvalidReservation   = errors.New("reservation description is required")
	ErrReservationNotFound  = errors.New("reservation not found")
)
