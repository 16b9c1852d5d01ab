package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Reservations on properties without reviews drop out of the inner join.
const getReservationsForGuestQuery = `
SELECT reservations.id,
  reservations.guest_id,
  reservations.property_id,
  reservations.start_date,
  reservations.end_date,
  ` + propertyColumns + `,
  avg(property_reviews.rating)::float8 AS average_rating
FROM reservations
JOIN properties ON reservations.property_id = properties.id
JOIN property_reviews ON properties.id = property_reviews.property_id
WHERE reservations.guest_id = $1
GROUP BY reservations.id, properties.id
ORDER BY reservations.start_date
LIMIT $2`

// ReservationRepository lists rows of the reservations table.
type ReservationRepository struct {
	db     database.Querier
	logger *zerolog.Logger
}

func NewReservationRepository(db database.Querier, logger *zerolog.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, logger: logger}
}

// GetReservationsForGuest returns up to limit of the guest's reservations,
// earliest start date first, each with its property and the property's
// average review rating. limit <= 0 means DefaultLimit.
func (r *ReservationRepository) GetReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]model.ReservationWithProperty, error) {
	if guestID <= 0 {
		return nil, errs.ErrIDRequired
	}
	if !fitsInt4(guestID) {
		return []model.ReservationWithProperty{}, nil
	}

	rows, err := r.db.Query(ctx, getReservationsForGuestQuery, guestID, normalizeLimit(limit))
	if err != nil {
		return nil, storeError(ctx, r.logger, "GetReservationsForGuest", err)
	}

	reservations, err := pgx.CollectRows(rows, scanReservationWithProperty)
	if err != nil {
		return nil, storeError(ctx, r.logger, "GetReservationsForGuest", err)
	}
	return reservations, nil
}

func scanReservationWithProperty(row pgx.CollectableRow) (model.ReservationWithProperty, error) {
	var rw model.ReservationWithProperty
	dest := []any{
		&rw.ID,
		&rw.GuestID,
		&rw.PropertyID,
		&rw.StartDate,
		&rw.EndDate,
	}
	dest = append(dest, propertyDest(&rw.Property)...)
	dest = append(dest, &rw.AverageRating)

	err := row.Scan(dest...)
	return rw, err
}
