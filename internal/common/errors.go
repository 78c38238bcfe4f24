// Package common defines shared constants and sentinel errors used across
// the repository, service and transport layers. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")
	ErrEmailTaken     = errors.New("email already registered")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Session lifecycle errors.
	ErrExpiredSession = errors.New("session expired")
	ErrUnknownSession = errors.New("unknown session")
	ErrRevokedSession = errors.New("session revoked")

	// Like/match errors.
	ErrInvalidLikeTarget = errors.New("invalid like target")
	ErrUnknownUser       = errors.New("unknown user")

	// ErrStorageUnavailable is transient; every operation that returns it is
	// safe to retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
