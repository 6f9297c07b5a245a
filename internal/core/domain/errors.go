package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField indicates an observation detail document lacked a
	// required frontmatter source field. Unlike transport failures this
	// aborts the whole run: a response that is well-formed JSON but
	// missing expected fields means the API shape has drifted.
	ErrMissingField = errors.New("required field missing")

	// ErrMalformedResponse indicates the remote API returned a body that
	// could not be decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrMalformedDocument indicates a local content file could not be
	// parsed back into frontmatter and body.
	ErrMalformedDocument = errors.New("malformed content document")

	// ErrUserNotConfigured indicates no iNaturalist user id is set.
	ErrUserNotConfigured = errors.New("user id not configured")
)
