package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type ListReservationsRequest struct {
	GuestID int64 `param:"id" validate:"required,gt=0"`
	Limit   int   `query:"limit" validate:"gte=0,lte=100"`
}

func (r *ListReservationsRequest) Validate() error { return validate.Struct(r) }

type ReservationHandler struct {
	Handler
	reservations *service.ReservationService
}

func NewReservationHandler(s *server.Server, reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Handler: NewHandler(s), reservations: reservations}
}

// ListForGuest serves GET /api/users/:id/reservations.
func (h *ReservationHandler) ListForGuest(c echo.Context, req *ListReservationsRequest) ([]model.ReservationWithProperty, error) {
	return h.reservations.ListForGuest(c.Request().Context(), req.GuestID, req.Limit)
}
