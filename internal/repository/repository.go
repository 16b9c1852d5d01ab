// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and the methods that fetch and persist
// LightBnB records, abstracting SQL away from the service layer.
//
// Every method returns (value, error). Errors are always typed
// *errs.HTTPError values: argument failures directly, store failures after
// being logged and translated by sqlerr.HandleError. A lookup that matches
// no row returns (nil, nil).
package repository

import (
	"context"
	"errors"
	"math"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/rs/zerolog"
)

// DefaultLimit caps listings when the caller passes no positive limit.
const DefaultLimit = 10

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// Ids and prices are INTEGER columns. Values outside int4 cannot be bound
// as parameters, and no stored row can match them.
func fitsInt4(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// loggerFrom prefers the request-scoped logger stored on ctx.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}

// storeError logs err against op and translates it for the caller.
// Errors that are already typed pass through unlogged.
func storeError(ctx context.Context, fallback *zerolog.Logger, op string, err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	loggerFrom(ctx, fallback).Error().Err(err).Str("operation", op).Msg("query failed")
	return sqlerr.HandleError(err)
}
