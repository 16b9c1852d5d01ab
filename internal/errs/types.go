package errs

import (
	"net/http"
)

// Codes shared by the data-access layer and the HTTP boundary.
const (
	CodeEmailRequired    = "EMAIL_REQUIRED"
	CodeIDRequired       = "ID_REQUIRED"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodePropertyRequired = "PROPERTY_REQUIRED"

	// CodeUserAlreadyExists is what sqlerr generates for a unique
	// violation on users.
	CodeUserAlreadyExists = "USER_ALREADY_EXISTS"
)

var (
	// ErrEmailRequired is returned by email lookups given an empty email.
	ErrEmailRequired = NewBadRequestError("Email is required", true, ptr(CodeEmailRequired), nil)

	// ErrIDRequired is returned by identifier lookups given no identifier.
	ErrIDRequired = NewBadRequestError("ID is required", true, ptr(CodeIDRequired), nil)

	// ErrPropertyRequired is returned when a nil property is inserted.
	ErrPropertyRequired = NewBadRequestError("Property is required", true, ptr(CodePropertyRequired), nil)

	// ErrUserNotFound is returned by the service layer when a lookup misses.
	ErrUserNotFound = NewNotFoundError("User not found", true, ptr(CodeUserNotFound))

	// ErrUserAlreadyExists matches, with errors.Is, the duplicate-email
	// failure of a user insert.
	ErrUserAlreadyExists = NewBadRequestError("User already exists", true, ptr(CodeUserAlreadyExists), nil)
)

func ptr(s string) *string { return &s }

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional (defaults to "BAD_REQUEST"); errors carries field-level
// validation failures.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, never the underlying cause.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil)
}
