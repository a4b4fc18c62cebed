package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. unknown report kind, month out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition is returned by the trip recorder when a lifecycle
// method is called from a state that forbids it (e.g. stop while idle).
// The recorder's state is unchanged when this error is returned.
// Handlers should map this to HTTP 409 Conflict.
var ErrInvalidTransition = errors.New("invalid state transition")

// ErrMalformedPath is returned by the path codec when a byte slice does not
// parse as an encoded fix sequence. Callers must treat it as "no path
// available" for the affected trip — totals remain valid and the error is
// never fatal.
var ErrMalformedPath = errors.New("malformed path data")
