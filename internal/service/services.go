// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data.
package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Users        *UserService
	Reservations *ReservationService
	Properties   *PropertyService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:        NewUserService(repos.Users, s.Logger),
		Reservations: NewReservationService(repos.Reservations),
		Properties:   NewPropertyService(repos.Properties),
	}, nil
}
