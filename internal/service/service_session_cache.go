package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/auth-bridge/internal/cache"
	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/models"
)

// SessionServiceWrapper wraps an existing SessionService to add behaviour
// such as caching.
type SessionServiceWrapper interface {
	Wrap(SessionService) SessionService
}

// CachedSessionService keeps positive Identify answers in an
// [cache.IdentityCache] keyed by the session cookie value. Negative answers
// always go back to the backend.
type CachedSessionService struct {
	inner      SessionService
	cache      cache.IdentityCache
	cookieName string

	logger *logger.Logger
}

// NewCachedSessionService returns a wrapper for SessionService. cookieName is
// the name of the backend's session cookie inside the Cookie header.
func NewCachedSessionService(c cache.IdentityCache, cookieName string, logger *logger.Logger) SessionServiceWrapper {
	return &CachedSessionService{
		cache:      c,
		cookieName: cookieName,
		logger:     logger.Component("session_cache"),
	}
}

func (c *CachedSessionService) Wrap(inner SessionService) SessionService {
	c.inner = inner
	return c
}

func (c *CachedSessionService) Exchange(ctx context.Context, idToken, cookie string) (models.BackendResponse, error) {
	return c.inner.Exchange(ctx, idToken, cookie)
}

func (c *CachedSessionService) WhoAmI(ctx context.Context, cookie string) (models.BackendResponse, error) {
	return c.inner.WhoAmI(ctx, cookie)
}

// Logout evicts the session from the cache once the backend confirms it.
func (c *CachedSessionService) Logout(ctx context.Context, cookie string) (models.BackendResponse, error) {
	resp, err := c.inner.Logout(ctx, cookie)
	if err == nil && resp.OK() {
		if session := c.sessionValue(cookie); session != "" {
			c.cache.Delete(session)
		}
	}
	return resp, err
}

func (c *CachedSessionService) Identify(ctx context.Context, cookie string) (*models.User, bool) {
	session := c.sessionValue(cookie)
	if session == "" {
		return c.inner.Identify(ctx, cookie)
	}

	if user, ok := c.cache.Get(session); ok {
		c.logger.Debug().Msg("session cache hit")
		return user, true
	}

	user, ok := c.inner.Identify(ctx, cookie)
	if ok && user != nil {
		c.cache.Set(session, *user)
	}
	return user, ok
}

// sessionValue extracts the session cookie from a raw Cookie header.
func (c *CachedSessionService) sessionValue(header string) string {
	if header == "" {
		return ""
	}
	cookies, err := http.ParseCookie(header)
	if err != nil {
		return ""
	}
	for _, ck := range cookies {
		if ck.Name == c.cookieName {
			return ck.Value
		}
	}
	return ""
}
