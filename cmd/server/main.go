package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/auth-bridge/internal/adapter"
	"github.com/MKhiriev/auth-bridge/internal/cache"
	"github.com/MKhiriev/auth-bridge/internal/config"
	"github.com/MKhiriev/auth-bridge/internal/handler"
	"github.com/MKhiriev/auth-bridge/internal/logger"
	"github.com/MKhiriev/auth-bridge/internal/server"
	"github.com/MKhiriev/auth-bridge/internal/service"
	"github.com/MKhiriev/auth-bridge/internal/ui"
	"github.com/MKhiriev/auth-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("auth-bridge")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// a version stamped at link time wins over the configured one
	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	if !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	config.LogEnvironmentSummary(cfg, log)

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Backend.BaseURL(log), cfg.Backend.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	identity, err := adapter.NewHTTPIdentityAdapter(cfg.Identity.BaseURL, cfg.Identity.APIKey, cfg.Identity.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity adapter")
	}
	if !cfg.Identity.Enabled() {
		log.Warn().Msg("IDENTITY_API_KEY is not set, email/password sign-in is unavailable")
	}

	identityCache := cache.New(cfg.Session.CacheTTL)

	services, err := service.NewServices(backend, identity, identityCache, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	renderer, err := ui.NewRenderer(ui.Settings{
		SiteTitle: cfg.App.SiteTitle,
		AppName:   cfg.App.Name,
		Version:   cfg.App.Version,
		Identity: ui.IdentityConfig{
			APIKey:        cfg.Identity.APIKey,
			AuthDomain:    cfg.Identity.AuthDomain,
			ProjectID:     cfg.Identity.ProjectID,
			GoogleEnabled: cfg.Identity.GoogleEnabled(),
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing page templates")
	}

	handlers, err := handler.NewHandlers(services, renderer, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, identityCache.Close)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		os.Exit(1)
	}
}
