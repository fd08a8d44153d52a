package http

import (
	"github.com/MKhiriev/auth-bridge/internal/config"
	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/service"
	"github.com/MKhiriev/auth-bridge/internal/ui"
	"github.com/MKhiriev/auth-bridge/internal/utils"
)

type Handler struct {
	services *service.Services
	renderer *ui.Renderer

	// limiter is nil when rate limiting is disabled.
	limiter *rateLimiter

	// trustProxy takes the client address from forwarding headers.
	trustProxy bool

	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer *ui.Renderer, cfg config.RateLimit, logger *logger.Logger) *Handler {
	h := &Handler{
		services:   services,
		renderer:   renderer,
		trustProxy: cfg.TrustProxy,
		traceID:    utils.NewUUIDGenerator(),
		logger:     logger,
	}

	if !cfg.Disabled && cfg.RPS > 0 {
		h.limiter = newRateLimiter(cfg.RPS, cfg.Burst)
	}

	logger.Info().
		Bool("rate_limit", h.limiter != nil).
		Float64("rate_limit_rps", cfg.RPS).
		Int("rate_limit_burst", cfg.Burst).
		Bool("trust_proxy", cfg.TrustProxy).
		Msg("http handler created")
	return h
}

// Close stops the background work owned by the handler.
func (h *Handler) Close() {
	if h.limiter != nil {
		h.limiter.Close()
	}
}
