package domain

import "errors"

// Sentinel errors classifying every failure a service can surface.
// Handlers map these to HTTP statuses with errors.Is; services wrap them
// with context via fmt.Errorf("...: %w", ...).
var (
	// ErrValidation indicates missing or malformed caller input.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated indicates a missing, invalid or expired identity.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized indicates a valid identity that does not own the
	// targeted resource. Deliberately distinct from ErrNotFound so a
	// caller can tell "does not exist" from "not yours".
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates no entity exists with the given id.
	ErrNotFound = errors.New("not found")

	// ErrStorage indicates a repository or attachment store I/O failure.
	ErrStorage = errors.New("storage failure")
)
