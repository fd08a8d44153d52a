package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "auth-bridge"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A zero timeout means
// the caller's context is the only deadline.
//
// The client keeps no cookie jar: it is shared by every browser session, so
// cookies are only ever sent when a request sets the Cookie header itself.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/api/auth/who-am-i")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetCookieJar(nil).
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
