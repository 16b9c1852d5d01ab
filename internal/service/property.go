package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
)

type PropertyService struct {
	properties repository.PropertyStore
}

func NewPropertyService(properties repository.PropertyStore) *PropertyService {
	return &PropertyService{properties: properties}
}

// List returns properties matching filters; limit <= 0 means
// repository.DefaultLimit.
func (s *PropertyService) List(ctx context.Context, filters model.PropertyFilters, limit int) ([]model.PropertyWithRating, error) {
	if limit <= 0 {
		limit = repository.DefaultLimit
	}
	return s.properties.GetAllProperties(ctx, filters, limit)
}

// Create stores p and returns it with its assigned id.
func (s *PropertyService) Create(ctx context.Context, p *model.Property) (*model.Property, error) {
	if p == nil {
		return nil, errs.ErrPropertyRequired
	}
	return s.properties.AddProperty(ctx, p)
}
