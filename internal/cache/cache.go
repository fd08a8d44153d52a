// Package cache holds the optional in-memory identity cache that spares the
// auth backend a who-am-i round trip for every page navigation.
//
// Entries are keyed by the SHA-256 of the session cookie value, never the raw
// cookie. Only positive answers are stored.
package cache

import (
	"sync"
	"time"

	"github.com/MKhiriev/auth-bridge/internal/utils"
	"github.com/MKhiriev/auth-bridge/models"
)

const cleanupInterval = time.Minute

// IdentityCache maps a session cookie value to the user the backend reported
// for it.
type IdentityCache interface {
	Get(cookie string) (*models.User, bool)
	Set(cookie string, user models.User)
	Delete(cookie string)
	Close()
}

type entry struct {
	user      models.User
	expiresAt time.Time
}

// SessionCache is a TTL map guarded by a RWMutex with one cleanup goroutine.
type SessionCache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration

	now  func() time.Time
	done chan struct{}
	once sync.Once
}

// New returns a [SessionCache] for ttl > 0 and a [Noop] otherwise.
func New(ttl time.Duration) IdentityCache {
	if ttl <= 0 {
		return Noop{}
	}
	return NewSessionCache(ttl)
}

// NewSessionCache creates a cache whose entries live for ttl and starts the
// cleanup loop. Call Close to stop it.
func NewSessionCache(ttl time.Duration) *SessionCache {
	c := &SessionCache{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go c.cleanupLoop(cleanupInterval)
	return c
}

// Get returns a copy of the cached user for cookie.
func (c *SessionCache) Get(cookie string) (*models.User, bool) {
	key := utils.SessionKey(cookie)

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, found := c.entries[key]
	if !found || c.now().After(e.expiresAt) {
		return nil, false
	}
	user := e.user
	return &user, true
}

func (c *SessionCache) Set(cookie string, user models.User) {
	key := utils.SessionKey(cookie)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{user: user, expiresAt: c.now().Add(c.ttl)}
}

func (c *SessionCache) Delete(cookie string) {
	key := utils.SessionKey(cookie)

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Len reports the number of stored entries, expired ones included.
func (c *SessionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup loop. It is safe to call more than once.
func (c *SessionCache) Close() {
	c.once.Do(func() { close(c.done) })
}

func (c *SessionCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

func (c *SessionCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// Noop never stores anything. It is used when caching is disabled.
type Noop struct{}

func (Noop) Get(string) (*models.User, bool) { return nil, false }
func (Noop) Set(string, models.User)         {}
func (Noop) Delete(string)                   {}
func (Noop) Close()                          {}
