package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

// ListPropertiesRequest holds the listing filters. Prices are dollars; the
// repository clamps them to the stored range.
type ListPropertiesRequest struct {
	City                 string  `query:"city"`
	OwnerID              int64   `query:"owner_id" validate:"gte=0"`
	MinimumPricePerNight float64 `query:"minimum_price_per_night" validate:"gte=0"`
	MaximumPricePerNight float64 `query:"maximum_price_per_night" validate:"gte=0"`
	MinimumRating        float64 `query:"minimum_rating" validate:"gte=0,lte=5"`
	Limit                int     `query:"limit" validate:"gte=0,lte=100"`
}

func (r *ListPropertiesRequest) Validate() error { return validate.Struct(r) }

func (r *ListPropertiesRequest) filters() model.PropertyFilters {
	return model.PropertyFilters{
		City:                 r.City,
		OwnerID:              r.OwnerID,
		MinimumPricePerNight: r.MinimumPricePerNight,
		MaximumPricePerNight: r.MaximumPricePerNight,
		MinimumRating:        r.MinimumRating,
	}
}

// CreatePropertyRequest is a new listing. CostPerNight is in cents.
type CreatePropertyRequest struct {
	OwnerID           int64  `json:"owner_id" validate:"required,gt=0,lte=2147483647"`
	Title             string `json:"title" validate:"required,max=255"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"omitempty,url"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"omitempty,url"`
	CostPerNight      int64  `json:"cost_per_night" validate:"gte=0,lte=2147483647"`
	ParkingSpaces     int    `json:"parking_spaces" validate:"gte=0,lte=2147483647"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" validate:"gte=0,lte=2147483647"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" validate:"gte=0,lte=2147483647"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city" validate:"required"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
}

func (r *CreatePropertyRequest) Validate() error { return validate.Struct(r) }

func (r *CreatePropertyRequest) property() *model.Property {
	return &model.Property{
		OwnerID:           r.OwnerID,
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailPhotoURL: r.ThumbnailPhotoURL,
		CoverPhotoURL:     r.CoverPhotoURL,
		CostPerNight:      r.CostPerNight,
		ParkingSpaces:     r.ParkingSpaces,
		NumberOfBathrooms: r.NumberOfBathrooms,
		NumberOfBedrooms:  r.NumberOfBedrooms,
		Country:           r.Country,
		Street:            r.Street,
		City:              r.City,
		Province:          r.Province,
		PostCode:          r.PostCode,
		Active:            true,
	}
}

type PropertyHandler struct {
	Handler
	properties *service.PropertyService
}

func NewPropertyHandler(s *server.Server, properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{Handler: NewHandler(s), properties: properties}
}

// ListProperties serves GET /api/properties.
func (h *PropertyHandler) ListProperties(c echo.Context, req *ListPropertiesRequest) ([]model.PropertyWithRating, error) {
	return h.properties.List(c.Request().Context(), req.filters(), req.Limit)
}

// CreateProperty serves POST /api/properties.
func (h *PropertyHandler) CreateProperty(c echo.Context, req *CreatePropertyRequest) (*model.Property, error) {
	return h.properties.Create(c.Request().Context(), req.property())
}
