// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across api/service/state layers.
var (
	// ErrUnauthorized indicates the server rejected the credentials or token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested resource does not exist on the server.
	ErrNotFound = errors.New("not found")

	// ErrNoSession indicates no persisted session is available locally.
	ErrNoSession = errors.New("no session (login required)")

	// ErrValidation indicates input rejected before any network call.
	ErrValidation = errors.New("validation")
)
