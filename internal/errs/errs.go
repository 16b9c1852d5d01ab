// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for forms or HTTPError for API responses)
// so that every layer, from the data-access layer up to the HTTP
// boundary, returns one consistent, typed error shape.
package errs
