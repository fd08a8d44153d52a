package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/auth-bridge/internal/config"
	"github.com/MKhiriev/auth-bridge/internal/handler"
	"github.com/MKhiriev/auth-bridge/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	handlers   *handler.Handlers

	// cleanups run after the HTTP server stopped, in order.
	cleanups []func()
	once     sync.Once

	logger *logger.Logger
}

// NewServer builds the HTTP server over the handlers. cleanups are run once
// the server has stopped accepting requests.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, cleanups ...func()) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errMissingHTTPHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errMissingAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		handlers:   handlers,
		cleanups:   cleanups,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(s.httpServer.RunServer)

	// listen for stop signals or a failed listener
	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info().Msg("shutting down server...")
		s.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.once.Do(func() {
		s.httpServer.Shutdown()
		s.handlers.Close()

		for _, cleanup := range s.cleanups {
			cleanup()
		}
	})
}
