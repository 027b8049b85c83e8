package domain

import "errors"

// ErrInvalidInput marks request payloads that fail validation (400).
var ErrInvalidInput = errors.New("invalid input")

// ErrForbidden marks requests whose role does not permit the operation (403).
var ErrForbidden = errors.New("access forbidden")

// ErrStoreUnavailable marks transient persistence failures (503). Handlers
// must return it instead of the raw driver error.
var ErrStoreUnavailable = errors.New("store unavailable")
