package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

type AccountHandler struct {
	accounts ports.AccountDirectory
}

func NewAccountHandler(accounts ports.AccountDirectory) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register creates a new account. The account is not signed in.
//
// @Summary      Register an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/accounts [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	account, err := h.accounts.Create(c.Request().Context(), req.Name, req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAccountResponse(*account))
}
