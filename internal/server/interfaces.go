package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns early with an error when the listener cannot be
	// opened or serving fails.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting new connections and waits, bounded by the
	// shutdown timeout, for in-flight requests to finish.
	Shutdown() error
}
