package auth

import "errors"

// Domain-specific errors for the auth package.
var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrEmptyCode       = errors.New("authorization code is empty")
	ErrExchangeFailed  = errors.New("failed to exchange authorization code")
)
