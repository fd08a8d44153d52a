// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/utils"
	"github.com/MKhiriev/auth-bridge/models"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 3 * time.Minute
	limiterIdleTimeout     = 5 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client address.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int

	now  func() time.Time
	done chan struct{}
	once sync.Once
}

// newRateLimiter starts a limiter allowing rps requests per second with the
// given burst. A burst below 1 is raised to 1.
func newRateLimiter(rps float64, burst int) *rateLimiter {
	rl := &rateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Limit(rps),
		burst:    max(burst, 1),
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go rl.cleanupLoop(limiterCleanupInterval)
	return rl
}

func (rl *rateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if l, ok := rl.limiters[client]; ok {
		l.lastSeen = now
		return l.limiter.AllowN(now, 1)
	}

	l := &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst), lastSeen: now}
	rl.limiters[client] = l
	return l.limiter.AllowN(now, 1)
}

// retryAfter is the number of whole seconds until a token is refilled.
func (rl *rateLimiter) retryAfter() int {
	return max(int(math.Ceil(1/float64(rl.limit))), 1)
}

// prune drops clients not seen for longer than limiterIdleTimeout.
func (rl *rateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for client, l := range rl.limiters {
		if now.Sub(l.lastSeen) > limiterIdleTimeout {
			delete(rl.limiters, client)
		}
	}
}

func (rl *rateLimiter) len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *rateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.prune()
		case <-rl.done:
			return
		}
	}
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (rl *rateLimiter) Close() {
	rl.once.Do(func() { close(rl.done) })
}

// withRateLimit rejects clients over their budget with 429 and Retry-After.
// JSON routes get the failure envelope, form routes a plain-text body.
func (h *Handler) withRateLimit(jsonReply bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if h.limiter == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)
			if h.limiter.allow(client) {
				next.ServeHTTP(w, r)
				return
			}

			logger.FromRequest(r).Component("middleware").Warn().
				Str("client", client).
				Str("path", r.URL.Path).
				Msg("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfter()))
			if jsonReply {
				utils.WriteJSON(w, models.Fail(MsgTooManyRequests), http.StatusTooManyRequests)
				return
			}
			http.Error(w, MsgTooManyRequests, http.StatusTooManyRequests)
		})
	}
}

// clientIP is the host part of RemoteAddr. Behind a trusted proxy chi's
// RealIP middleware has already replaced it with the forwarded address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
