package repository

import (
	"github.com/deppfellow/lightbnb/internal/model"
)

// propertyColumns is the full properties record in model.Property field order.
const propertyColumns = `properties.id,
  properties.owner_id,
  properties.title,
  COALESCE(properties.description, ''),
  properties.thumbnail_photo_url,
  properties.cover_photo_url,
  properties.cost_per_night,
  properties.parking_spaces,
  properties.number_of_bathrooms,
  properties.number_of_bedrooms,
  properties.country,
  properties.street,
  properties.city,
  properties.province,
  properties.post_code,
  properties.active`

// propertyDest returns scan destinations matching propertyColumns.
func propertyDest(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Active,
	}
}
