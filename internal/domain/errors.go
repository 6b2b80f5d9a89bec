package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when a payload fails field
// validation. The concrete error is a validate.Violations listing every rule
// that failed. Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an insert collides with a unique constraint
// (duplicate client email or PESEL). Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrAlreadyRegistered is returned when a client is already registered for
// the trip. It wraps ErrConflict so generic conflict handling still applies.
var ErrAlreadyRegistered = fmt.Errorf("already registered: %w", ErrConflict)

// ErrCapacityExceeded is returned when a trip has no free places left.
// Handlers should map this to HTTP 400.
var ErrCapacityExceeded = errors.New("trip has reached maximum capacity")

// ErrRegistrationFailed is returned when the registration insert affected
// no rows. Handlers should map this to HTTP 400.
var ErrRegistrationFailed = errors.New("registration failed")

// Specific not-found errors. Each wraps ErrNotFound so generic 404 handling
// still applies; handlers use them to pick the response message.
var (
	ErrClientNotFound       = fmt.Errorf("client %w", ErrNotFound)
	ErrTripNotFound         = fmt.Errorf("trip %w", ErrNotFound)
	ErrNoClientTrips        = fmt.Errorf("client trips %w", ErrNotFound)
	ErrRegistrationNotFound = fmt.Errorf("registration %w", ErrNotFound)
)
