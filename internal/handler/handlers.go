package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

// Handlers groups all HTTP handlers so the router is wired from one value.
type Handlers struct {
	Health       *HealthHandler
	Users        *UserHandler
	Reservations *ReservationHandler
	Properties   *PropertyHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Users:        NewUserHandler(s, services.Users),
		Reservations: NewReservationHandler(s, services.Reservations),
		Properties:   NewPropertyHandler(s, services.Properties),
	}
}
