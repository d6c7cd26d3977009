package errors

import "errors"

// This package defines the sentinel errors shared by the session engine.
// Operations wrap them with fmt.Errorf("%w: ...") and the API layer maps
// them to HTTP statuses with errors.Is.

var (
	// ErrPrecondition signifies that a client-side gate rejected an operation
	// before anything was sent to the backend (missing conversation, empty
	// selection, empty input). Session State is left untouched.
	ErrPrecondition = errors.New("precondition not met")

	// ErrValidation signifies that input data failed validation rules.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrBackend signifies that the backend answered with a non-2xx status.
	ErrBackend = errors.New("backend rejected request")

	// ErrTransport signifies that no response was received at all
	// (connection refused, timeout, malformed body).
	ErrTransport = errors.New("transport failure")

	// ErrStale signifies that a result arrived after the conversation it was
	// issued for stopped being current, and was discarded.
	ErrStale = errors.New("stale result discarded")

	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")
)
