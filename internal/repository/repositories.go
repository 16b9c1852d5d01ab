package repository

import (
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Reservations *ReservationRepository
	Properties   *PropertyRepository
}

// NewRepositories wires every repository to the shared pool on s.DB and
// the property writer to the fixture store on s.Fixtures.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(s.DB.Pool, s.Logger),
		Reservations: NewReservationRepository(s.DB.Pool, s.Logger),
		Properties:   NewPropertyRepository(s.DB.Pool, s.Fixtures, s.Logger),
	}
}
