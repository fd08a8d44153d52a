package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/auth-bridge/internal/logger"
)

// withLogging writes one access-log entry per request. Server errors are
// logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		log := logger.FromRequest(r)
		event := log.Info()
		if rw.status >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
