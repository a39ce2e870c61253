package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/reservation-system/internal/core/domain"
	"github.com/99minutos/reservation-system/internal/core/ports"
)

// ReservationHandler handles HTTP requests for reservation operations.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List handles GET /v1/reservations.
//
// @Summary      List reservations in creation order
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listReservationsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	list, err := h.service.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	items := make([]reservationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toReservationResponse(r))
	}
	return c.JSON(http.StatusOK, listReservationsResponse{Items: items, Total: len(items)})
}

// Create handles POST /v1/reservations. Regular users become the owner.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Reservation"
// @Success      201   {object}  reservationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	r, err := h.service.Create(c.Request().Context(), sess, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toReservationResponse(*r))
}

// Update handles PATCH /v1/reservations/:id. Admin only.
//
// @Summary      Update a reservation
// @Tags         reservations
// @Accept       json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Reservation id"
// @Param        body  body      updateReservationRequest  true  "Fields to overwrite"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/reservations/{id} [patch]
func (h *ReservationHandler) Update(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var req updateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	patch := domain.ReservationPatch{Description: req.Description, Owner: req.Owner}
	if patch.IsEmpty() {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}
	if err := h.service.Edit(c.Request().Context(), sess, id, patch); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/reservations/:id. Admin only.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Security     BearerAuth
// @Param        id  path  int  true  "Reservation id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), sess, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
