// Package common defines shared constants and sentinel errors used across
// client and server layers of WordBridge. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrorAlreadyExists   = errors.New("already exists")
	ErrorNotAcknowledged = errors.New("write not acknowledged")

	// Service-level errors.
	ErrorUnauthorized    = errors.New("unauthorized")
	ErrorInvalidPassword = errors.New("invalid password")

	// Translation upstream reported a failure of its own.
	ErrorUpstream = errors.New("upstream error")
)
