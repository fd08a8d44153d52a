package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer() error

	// Run serves requests until ctx is cancelled or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	// Calls after the first are no-ops.
	Shutdown()
}
