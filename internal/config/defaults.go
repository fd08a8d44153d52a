package config

import "time"

// Built-in defaults. They sit at the bottom of the merge order, so any source
// that sets a field overrides them.
const (
	DefaultAppName         = "Auth App"
	DefaultSiteTitle       = "LLM Search"
	DefaultHTTPAddress     = "localhost:3000"
	DefaultBackendURLLocal = "http://localhost:8000"
	DefaultIdentityBaseURL = "https://identitytoolkit.googleapis.com/v1"
	DefaultCookieName      = "session"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:      DefaultAppName,
			SiteTitle: DefaultSiteTitle,
			Version:   "dev",
			LogLevel:  "debug",
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  30 * time.Second,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Frontend: Frontend{
			RunningOn: RunningOnLocal,
		},
		Backend: Backend{
			RunningOn:      RunningOnLocal,
			URLLocal:       DefaultBackendURLLocal,
			RequestTimeout: 10 * time.Second,
		},
		Identity: Identity{
			BaseURL:        DefaultIdentityBaseURL,
			RequestTimeout: 10 * time.Second,
		},
		Session: Session{
			CookieName: DefaultCookieName,
		},
		RateLimit: RateLimit{
			RPS:   5,
			Burst: 10,
		},
		DotEnvPath: defaultDotEnvPath,
	}
}
