package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"name": "Bridge",
			"version": "1.0.0",
			"log_level": "info"
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"shutdown_timeout": 5000000000
		},
		"frontend": { "running_on": "cloud" },
		"backend": {
			"running_on": "cloud",
			"url_local": "http://localhost:8000",
			"url_cloud": "https://api.example.com",
			"request_timeout": "2s"
		},
		"identity": { "api_key": "key", "auth_domain": "app.example.com" },
		"session": { "cookie_name": "sid", "cache_ttl": "1m" },
		"rate_limit": { "rps": 1.5, "burst": 3 }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Bridge", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, RunningOnCloud, cfg.Frontend.RunningOn)
	assert.Equal(t, RunningOnCloud, cfg.Backend.RunningOn)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URLLocal)
	assert.Equal(t, "https://api.example.com", cfg.Backend.URLCloud)
	assert.Equal(t, 2*time.Second, cfg.Backend.RequestTimeout)

	assert.Equal(t, "key", cfg.Identity.APIKey)
	assert.Equal(t, "app.example.com", cfg.Identity.AuthDomain)

	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, time.Minute, cfg.Session.CacheTTL)

	assert.InDelta(t, 1.5, cfg.RateLimit.RPS, 0.0001)
	assert.Equal(t, 3, cfg.RateLimit.Burst)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "soon"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
