// Package common defines shared constants and sentinel errors used across
// client and server layers of transferbench. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorInvalidFileName = errors.New("invalid file name")
	ErrorNoData          = errors.New("no data received")
	ErrorInvalidPage     = errors.New("invalid page request")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
