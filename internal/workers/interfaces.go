// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers group that runs several
// workers under one context, and the memory sampler that feeds the
// metrics registry.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker that stops
// because ctx was cancelled returns nil.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
	Name() string
}
