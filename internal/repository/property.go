package repository

import (
	"context"
	"math"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/lib/sqlbuild"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// PropertyWriter stores new properties.
//
// fixture.Store implements it in memory; a persistent insert can take its
// place without changing PropertyRepository's callers.
type PropertyWriter interface {
	AddProperty(ctx context.Context, p *model.Property) (*model.Property, error)
}

// PropertyStore is everything callers need from a property store.
type PropertyStore interface {
	PropertyWriter
	GetAllProperties(ctx context.Context, filters model.PropertyFilters, limit int) ([]model.PropertyWithRating, error)
}

var _ PropertyStore = (*PropertyRepository)(nil)

// Properties without reviews drop out of the inner join.
var propertyListBase = sqlbuild.NewSelect(`
SELECT ` + propertyColumns + `,
  avg(property_reviews.rating)::float8 AS average_rating
FROM properties
JOIN property_reviews ON properties.id = property_reviews.property_id`)

// PropertyRepository lists properties from the store and hands inserts to
// its PropertyWriter.
type PropertyRepository struct {
	db     database.Querier
	writer PropertyWriter
	logger *zerolog.Logger
}

func NewPropertyRepository(db database.Querier, writer PropertyWriter, logger *zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, writer: writer, logger: logger}
}

// toCents converts a major-unit price to the stored minor units, clamped to
// the int4 range of cost_per_night. NaN converts to 0.
func toCents(v float64) int64 {
	cents := math.Round(v * 100)
	switch {
	case math.IsNaN(cents):
		return 0
	case cents >= math.MaxInt32:
		return math.MaxInt32
	case cents <= math.MinInt32:
		return math.MinInt32
	}
	return int64(cents)
}

// propertyListQuery renders the filtered listing. Zero-valued filters are
// skipped; the price range applies only when both bounds are set.
func propertyListQuery(filters model.PropertyFilters, limit int) (sqlbuild.Query, error) {
	stmt := propertyListBase

	if filters.City != "" {
		stmt = stmt.Where(sqlbuild.Pred("properties.city LIKE ?", "%"+filters.City+"%"))
	}

	if filters.OwnerID != 0 {
		stmt = stmt.Where(sqlbuild.Pred("properties.owner_id = ?", filters.OwnerID))
	}

	if filters.HasPriceRange() {
		stmt = stmt.Where(sqlbuild.Pred(
			"properties.cost_per_night BETWEEN ? AND ?",
			toCents(filters.MinimumPricePerNight),
			toCents(filters.MaximumPricePerNight),
		))
	}

	stmt = stmt.GroupBy("properties.id")

	if filters.MinimumRating != 0 {
		stmt = stmt.Having(sqlbuild.Pred("avg(property_reviews.rating) >= ?", filters.MinimumRating))
	}

	return stmt.
		OrderBy("properties.cost_per_night").
		Limit(normalizeLimit(limit)).
		Build()
}

// GetAllProperties returns up to limit properties matching every supplied
// filter, cheapest first, each with its average review rating.
// limit <= 0 means DefaultLimit.
func (r *PropertyRepository) GetAllProperties(ctx context.Context, filters model.PropertyFilters, limit int) ([]model.PropertyWithRating, error) {
	if !fitsInt4(filters.OwnerID) {
		return []model.PropertyWithRating{}, nil
	}

	q, err := propertyListQuery(filters, limit)
	if err != nil {
		return nil, storeError(ctx, r.logger, "GetAllProperties", err)
	}

	loggerFrom(ctx, r.logger).Debug().
		Str("sql", q.SQL).
		Interface("args", q.Args).
		Msg("listing properties")

	rows, err := r.db.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, storeError(ctx, r.logger, "GetAllProperties", err)
	}

	properties, err := pgx.CollectRows(rows, scanPropertyWithRating)
	if err != nil {
		return nil, storeError(ctx, r.logger, "GetAllProperties", err)
	}
	return properties, nil
}

func scanPropertyWithRating(row pgx.CollectableRow) (model.PropertyWithRating, error) {
	var pr model.PropertyWithRating
	dest := append(propertyDest(&pr.Property), &pr.AverageRating)
	err := row.Scan(dest...)
	return pr, err
}

// AddProperty stores p through the configured writer and returns it with
// its assigned id.
func (r *PropertyRepository) AddProperty(ctx context.Context, p *model.Property) (*model.Property, error) {
	added, err := r.writer.AddProperty(ctx, p)
	if err != nil {
		return nil, storeError(ctx, r.logger, "AddProperty", err)
	}
	return added, nil
}
