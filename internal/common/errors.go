// Package common defines shared constants and sentinel errors used across
// the HeartTrack server and CLI. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("user already exists")

	// Service-level errors.
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorForbidden          = errors.New("forbidden: admin access only")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Validation errors.
	ErrorMissingCredentials = errors.New("provide email and password")
	ErrorInvalidRole        = errors.New("invalid role")
	ErrorHeartRateRange     = errors.New("heart rate out of range")
	ErrorThresholdRange     = errors.New("threshold out of range")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Archive storage is optional and may be switched off.
	ErrorArchiveDisabled = errors.New("archive storage is not configured")
)
