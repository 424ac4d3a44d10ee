// Package workers holds the client's background jobs: the debounced backup
// scheduler and the periodic vault refresh. Workers share a minimal Run/Stop
// contract so the application can start and drain them uniformly.
package workers

// Worker is a background job with its own goroutine lifecycle. Run starts the
// job and returns immediately; Stop blocks until the job has drained.
type Worker interface {
	Run()
	Stop()
}
