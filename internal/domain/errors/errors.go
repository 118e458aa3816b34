// Package errors defines the failures use cases report to callers. Each one
// carries the HTTP status and machine-readable code the API responds with.
package errors

import (
	"net/http"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/errors"
)

// AppError is an error the API layer can render as-is.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string // e.g. "PHARMACY_NOT_FOUND"
	Message() string   // safe to show to clients
	Details() string   // optional, only rendered for 4xx
}

// BaseError is the AppError implementation used by every predefined error.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func newBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the error code, so the copy returned by WithDetails still
// satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// WrapMessage keeps e as the cause and adds context plus a stack trace.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int { return e.httpCode }

func (e *BaseError) ErrorCode() string { return e.errorCode }

func (e *BaseError) Message() string { return e.message }

func (e *BaseError) Details() string { return e.details }

// WithDetails returns a copy of e describing this particular failure.
func (e *BaseError) WithDetails(details string) *BaseError {
	detailed := *e
	detailed.details = details

	return &detailed
}

// Accounts and authentication.
var (
	ErrUserNotFound       = newBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists  = newBaseError(http.StatusConflict, "USER_ALREADY_EXISTS", "User with this email already exists.")
	ErrInvalidCredentials = newBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrUnauthorized       = newBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid access token")
	ErrPasswordHashFailed = newBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password")
)

// Pharmacies.
var (
	ErrPharmacyNotFound      = newBaseError(http.StatusNotFound, "PHARMACY_NOT_FOUND", "Pharmacy not found")
	ErrPharmacyAlreadyExists = newBaseError(http.StatusConflict, "PHARMACY_ALREADY_EXISTS", "Pharmacy with this email already exists.")
)

// ErrValidationFailed is returned with details naming the offending input.
var ErrValidationFailed = newBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
