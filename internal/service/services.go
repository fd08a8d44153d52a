package service

import (
	"fmt"

	"github.com/MKhiriev/auth-bridge/internal/adapter"
	"github.com/MKhiriev/auth-bridge/internal/cache"
	"github.com/MKhiriev/auth-bridge/internal/config"
	"github.com/MKhiriev/auth-bridge/internal/logger"
)

type Services struct {
	SessionService SessionService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the services over the adapters. The session service is
// wrapped with the identity cache only when SESSION_CACHE_TTL is positive.
func NewServices(backend adapter.BackendAdapter, identity adapter.IdentityAdapter, identityCache cache.IdentityCache, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	sessions := NewSessionService(backend, logger)
	if cfg.Session.CacheTTL > 0 {
		sessions = NewCachedSessionService(identityCache, cfg.Session.CookieName, logger).Wrap(sessions)
	}

	return &Services{
		SessionService: sessions,
		AuthService:    NewAuthService(identity, sessions, logger),
		AppInfoService: appInfo,
	}, nil
}
