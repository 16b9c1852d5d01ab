package model

// PropertyReview documents the shape of a property_reviews row. No
// repository reads or writes reviews one at a time; listings only
// aggregate their rating, and the integration seed inserts them.
type PropertyReview struct {
	ID            int64  `json:"id"`
	GuestID       int64  `json:"guest_id"`
	PropertyID    int64  `json:"property_id"`
	ReservationID int64  `json:"reservation_id"`
	Rating        int    `json:"rating"`
	Message       string `json:"message"`
}
