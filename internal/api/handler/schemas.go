package handler

import "github.com/99minutos/reservation-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Accounts ---

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=user admin"`
}

type accountResponse struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func toAccountResponse(a domain.Account) accountResponse {
	return accountResponse{Name: a.DisplayName, Username: a.Username, Role: string(a.Role)}
}

// --- Sessions ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token   string          `json:"token,omitempty"`
	Account accountResponse `json:"account"`
}

// --- Reservations ---

type createReservationRequest struct {
	Description string `json:"description" validate:"required"`
}

type updateReservationRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Owner       *string `json:"owner,omitempty"`
}

type reservationResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Owner       string `json:"owner,omitempty"`
}

type listReservationsResponse struct {
	Items []reservationResponse `json:"items"`
	Total int                   `json:"total"`
}

func toReservationResponse(r domain.Reservation) reservationResponse {
	return reservationResponse{ID: r.ID, Description: r.Description, Owner: r.Owner}
}
