// Package server runs the HTTP server of the bridge.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout, followed by the release of
// background resources such as the rate limiter and the identity cache.
package server
