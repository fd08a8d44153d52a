package adapter

import "errors"

var (
	ErrInvalidBaseURL = errors.New("invalid base url")

	ErrBackendUnavailable = errors.New("auth backend unavailable")

	ErrIdentityNotConfigured = errors.New("identity provider is not configured")
	ErrIdentityUnavailable   = errors.New("identity provider unavailable")
	ErrIdentityRejected      = errors.New("identity provider rejected the request")

	ErrInvalidCredential = errors.New("invalid credential")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrTooManyRequests   = errors.New("too many requests")
	ErrEmailExists       = errors.New("email already in use")
	ErrWeakPassword      = errors.New("weak password")
)
