package model

// Property is a row of the properties table.
//
// CostPerNight is stored in cents.
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Active            bool   `json:"active"`
}

// PropertyWithRating is a property listing row.
//
// AverageRating is the mean of the property's review ratings.
type PropertyWithRating struct {
	Property
	AverageRating *float64 `json:"average_rating"`
}

// PropertyFilters narrows a property listing. A zero field means the filter
// was not supplied.
//
// Prices are in major currency units (dollars); MinimumPricePerNight and
// MaximumPricePerNight only apply when both are set.
type PropertyFilters struct {
	City                 string
	OwnerID              int64
	MinimumPricePerNight float64
	MaximumPricePerNight float64
	MinimumRating        float64
}

// HasPriceRange reports whether both price bounds were supplied.
func (f PropertyFilters) HasPriceRange() bool {
	return f.MinimumPricePerNight != 0 && f.MaximumPricePerNight != 0
}
