package model

import "time"

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id"`
	PropertyID int64     `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// ReservationWithProperty is a guest reservation listing row: the
// reservation, the reserved property and the property's mean rating.
type ReservationWithProperty struct {
	Reservation
	Property      Property `json:"property"`
	AverageRating *float64 `json:"average_rating"`
}
