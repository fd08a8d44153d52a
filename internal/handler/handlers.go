package handler

import (
	"github.com/MKhiriev/auth-bridge/internal/config"
	"github.com/MKhiriev/auth-bridge/internal/handler/http"
	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/service"
	"github.com/MKhiriev/auth-bridge/internal/ui"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, renderer *ui.Renderer, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil || renderer == nil {
		return nil, errMissingDependencies
	}

	return &Handlers{
		HTTP: http.NewHandler(services, renderer, cfg.RateLimit, logger),
	}, nil
}

// Close releases resources held by the transport handlers.
func (h *Handlers) Close() {
	if h.HTTP != nil {
		h.HTTP.Close()
	}
}
