// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution. Implementations are expected to spawn
// goroutines internally and return promptly.
//
// Stop requests termination of the worker's background work and blocks
// until it has wound down.
type Worker interface {
	Run()
	Stop()
}
