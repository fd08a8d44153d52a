// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Placement values accepted by Frontend.RunningOn and Backend.RunningOn.
const (
	RunningOnLocal = "local"
	RunningOnCloud = "cloud"
)

// StructuredConfig is the top-level configuration container for auth-bridge.
// It is populated by merging a dotenv file, environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds naming, versioning and log verbosity.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Frontend describes where this service is deployed.
	Frontend Frontend `envPrefix:"FRONTEND_"`

	// Backend describes where the auth backend runs and how to reach it.
	Backend Backend `envPrefix:"BACKEND_"`

	// Identity configures the identity provider used for email/password
	// sign-in and the Google popup flow.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Session holds settings for the session cookie issued by the backend.
	Session Session `envPrefix:"SESSION_"`

	// RateLimit throttles the auth endpoints per client address.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// DotEnvPath is the dotenv file loaded before the environment is read.
	// Env: ENV_FILE. Defaults to ".env.local"; a missing file is ignored.
	DotEnvPath string `env:"ENV_FILE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is shown in page titles ("Login | <Name>").
	// Env: APP_NAME
	Name string `env:"NAME"`

	// SiteTitle is the title of the root layout.
	// Env: APP_SITE_TITLE
	SiteTitle string `env:"SITE_TITLE"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// RequestTimeout bounds a single inbound request, backend calls included.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0s"`

	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT" validate:"gt=0s"`

	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" validate:"gt=0s"`

	// Env: SERVER_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" validate:"gt=0s"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0s"`
}

// Frontend describes the deployment of this service.
type Frontend struct {
	// RunningOn is "local" or "cloud".
	// Env: FRONTEND_RUNNING_ON
	RunningOn string `env:"RUNNING_ON"`
}

// Backend describes the external auth backend.
type Backend struct {
	// RunningOn selects URLLocal ("local") or URLCloud ("cloud"). Any other
	// value falls back to URLLocal with a warning.
	// Env: BACKEND_RUNNING_ON
	RunningOn string `env:"RUNNING_ON"`

	// Env: BACKEND_URL_LOCAL
	URLLocal string `env:"URL_LOCAL" validate:"required,url"`

	// URLCloud is required when RunningOn is "cloud".
	// Env: BACKEND_URL_CLOUD
	URLCloud string `env:"URL_CLOUD" validate:"omitempty,url"`

	// RequestTimeout bounds each forwarded call.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0s"`
}

// Identity configures the identity provider REST API.
type Identity struct {
	// APIKey is the web API key of the identity project. Email/password
	// sign-in is unavailable without it.
	// Env: IDENTITY_API_KEY
	APIKey string `env:"API_KEY"`

	// Env: IDENTITY_BASE_URL
	BaseURL string `env:"BASE_URL" validate:"required,url"`

	// AuthDomain and ProjectID are handed to the browser for the Google popup.
	// Env: IDENTITY_AUTH_DOMAIN
	AuthDomain string `env:"AUTH_DOMAIN"`
	// Env: IDENTITY_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// Env: IDENTITY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0s"`
}

// Enabled reports whether email/password sign-in can be offered.
func (i Identity) Enabled() bool {
	return i.APIKey != ""
}

// GoogleEnabled reports whether the browser has enough to start the popup flow.
func (i Identity) GoogleEnabled() bool {
	return i.APIKey != "" && i.AuthDomain != ""
}

// Session holds settings tied to the backend's session cookie.
type Session struct {
	// CookieName is the name of the cookie the backend issues.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME" validate:"required"`

	// CacheTTL caches positive who-am-i answers per cookie. Zero disables it.
	// Env: SESSION_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL" validate:"gte=0s"`
}

// RateLimit configures the per-client token bucket on auth endpoints.
type RateLimit struct {
	// Env: RATE_LIMIT_DISABLED
	Disabled bool `env:"DISABLED"`

	// RPS is the sustained number of requests per second per client.
	// Env: RATE_LIMIT_RPS
	RPS float64 `env:"RPS" validate:"gte=0"`

	// Env: RATE_LIMIT_BURST
	Burst int `env:"BURST" validate:"gte=0"`

	// TrustProxy keys clients on X-Forwarded-For / X-Real-IP. Enable it only
	// behind a proxy that overwrites those headers; otherwise any client can
	// pick its own bucket.
	// Env: RATE_LIMIT_TRUST_PROXY
	TrustProxy bool `env:"TRUST_PROXY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first source that sets it wins:
//  1. Environment variables (after loading the dotenv file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
