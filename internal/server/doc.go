// Package server runs the local control API of the trace-warning client.
//
// It owns the HTTP server lifecycle: startup, and graceful shutdown once the
// application context is cancelled.
package server
