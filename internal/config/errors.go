package config

import "errors"

// Errors returned by [GetStructuredConfig].
var (
	// ErrInvalidConfig wraps field-level validation failures of the merged config.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingCloudBackendURL is returned when the backend is declared to run
	// in cloud but no cloud URL is configured.
	ErrMissingCloudBackendURL = errors.New("backend runs in cloud but BACKEND_URL_CLOUD is empty")

	// ErrInvalidFlags wraps command-line parsing failures.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
