package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
)

type ReservationStore interface {
	GetReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithProperty, error)
}

type ReservationService struct {
	reservations ReservationStore
}

func NewReservationService(reservations ReservationStore) *ReservationService {
	return &ReservationService{reservations: reservations}
}

// ListForGuest returns the guest's reservations; limit <= 0 means
// repository.DefaultLimit.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithProperty, error) {
	if limit <= 0 {
		limit = repository.DefaultLimit
	}
	return s.reservations.GetReservationsForGuest(ctx, guestID, limit)
}
