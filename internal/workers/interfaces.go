// Package workers runs the long-lived background parts of the client (the
// download job, the control server) side by side and stops them together.
package workers

import "context"

// Worker is a background process that runs until ctx is cancelled. A
// non-nil error stops every sibling worker.
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts an ordinary function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run implements [Worker].
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
