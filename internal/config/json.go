package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
// Durations are written as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Name      string `json:"name"`
		SiteTitle string `json:"site_title"`
		Version   string `json:"version"`
		LogLevel  string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		IdleTimeout     Duration `json:"idle_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Frontend struct {
		RunningOn string `json:"running_on"`
	} `json:"frontend,omitempty"`

	Backend struct {
		RunningOn      string   `json:"running_on"`
		URLLocal       string   `json:"url_local"`
		URLCloud       string   `json:"url_cloud"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Identity struct {
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		AuthDomain     string   `json:"auth_domain"`
		ProjectID      string   `json:"project_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"identity,omitempty"`

	Session struct {
		CookieName string   `json:"cookie_name"`
		CacheTTL   Duration `json:"cache_ttl"`
	} `json:"session,omitempty"`

	RateLimit struct {
		Disabled   bool    `json:"disabled"`
		RPS        float64 `json:"rps"`
		Burst      int     `json:"burst"`
		TrustProxy bool    `json:"trust_proxy"`
	} `json:"rate_limit,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:      jsonCfg.App.Name,
			SiteTitle: jsonCfg.App.SiteTitle,
			Version:   jsonCfg.App.Version,
			LogLevel:  jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			IdleTimeout:     time.Duration(jsonCfg.Server.IdleTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Frontend: Frontend{
			RunningOn: jsonCfg.Frontend.RunningOn,
		},
		Backend: Backend{
			RunningOn:      jsonCfg.Backend.RunningOn,
			URLLocal:       jsonCfg.Backend.URLLocal,
			URLCloud:       jsonCfg.Backend.URLCloud,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Identity: Identity{
			APIKey:         jsonCfg.Identity.APIKey,
			BaseURL:        jsonCfg.Identity.BaseURL,
			AuthDomain:     jsonCfg.Identity.AuthDomain,
			ProjectID:      jsonCfg.Identity.ProjectID,
			RequestTimeout: time.Duration(jsonCfg.Identity.RequestTimeout),
		},
		Session: Session{
			CookieName: jsonCfg.Session.CookieName,
			CacheTTL:   time.Duration(jsonCfg.Session.CacheTTL),
		},
		RateLimit: RateLimit{
			Disabled:   jsonCfg.RateLimit.Disabled,
			RPS:        jsonCfg.RateLimit.RPS,
			Burst:      jsonCfg.RateLimit.Burst,
			TrustProxy: jsonCfg.RateLimit.TrustProxy,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
