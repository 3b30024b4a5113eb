// Package server runs the application's HTTP server.
//
// It owns the server lifecycle: opening the listener, serving until the
// caller's context is cancelled, and a graceful shutdown bounded by
// a timeout.
package server
