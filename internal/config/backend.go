// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"

	"github.com/MKhiriev/auth-bridge/internal/logger"
)

// sessionMaxAge mirrors the lifetime the backend gives its session cookie.
const sessionMaxAge = 14 * 24 * time.Hour

// BaseURL returns the auth backend base URL for the configured placement.
// Any value other than "local" or "cloud" logs a warning and falls back to
// the local URL. Trailing slashes are trimmed.
func (b Backend) BaseURL(log *logger.Logger) string {
	switch b.RunningOn {
	case RunningOnLocal:
		return strings.TrimRight(b.URLLocal, "/")
	case RunningOnCloud:
		return strings.TrimRight(b.URLCloud, "/")
	default:
		log.Warn().
			Str("component", "config").
			Str("backend_running_on", b.RunningOn).
			Msg("Unexpected backend config, defaulting to local backend")
		return strings.TrimRight(b.URLLocal, "/")
	}
}

// CookieSettings describes how the backend configures its session cookie
// for this placement.
type CookieSettings struct {
	HTTPOnly bool
	Secure   bool
	SameSite string
	MaxAge   time.Duration
	Name     string
}

// CookieSettings returns the cookie attributes the backend uses: secure and
// SameSite=None only in cloud, SameSite=Lax locally. It is informational;
// this service never writes the cookie itself.
func (b Backend) CookieSettings(name string) CookieSettings {
	cloud := b.RunningOn == RunningOnCloud
	sameSite := "lax"
	if cloud {
		sameSite = "none"
	}

	return CookieSettings{
		HTTPOnly: true,
		Secure:   cloud,
		SameSite: sameSite,
		MaxAge:   sessionMaxAge,
		Name:     name,
	}
}

// LogEnvironmentSummary writes the resolved deployment settings at startup.
func LogEnvironmentSummary(cfg *StructuredConfig, log *logger.Logger) {
	cookie := cfg.Backend.CookieSettings(cfg.Session.CookieName)

	log.Info().
		Str("component", "config").
		Str("frontend_running_on", cfg.Frontend.RunningOn).
		Str("backend_running_on", cfg.Backend.RunningOn).
		Str("backend_url_local", cfg.Backend.URLLocal).
		Str("backend_url_cloud", cfg.Backend.URLCloud).
		Str("active_backend_url", cfg.Backend.BaseURL(log)).
		Bool("identity_enabled", cfg.Identity.Enabled()).
		Dur("session_cache_ttl", cfg.Session.CacheTTL).
		Msg("environment summary")

	log.Info().
		Str("component", "config").
		Str("cookie_name", cookie.Name).
		Bool("cookie_http_only", cookie.HTTPOnly).
		Bool("cookie_secure", cookie.Secure).
		Str("cookie_same_site", cookie.SameSite).
		Dur("cookie_max_age", cookie.MaxAge).
		Msg("backend cookie settings")
}
