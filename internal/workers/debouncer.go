package workers

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of Schedule calls into a single execution of
// the most recent function once the quiet period has elapsed. The sync engine
// uses it so that ten quick edits produce one backup upload, not ten.
type Debouncer struct {
	quiet time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	stopped bool
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = time.Second
	}
	return &Debouncer{quiet: quiet}
}

// Schedule arms the debouncer with fn, replacing any function scheduled
// earlier in the same quiet period. fn runs on the timer's goroutine.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Flush runs the pending function immediately, if any. Used on shutdown so a
// scheduled backup is not lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop flushes the pending function and rejects further scheduling.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
	d.Flush()
}

// Run satisfies the Worker contract; a debouncer has nothing to start.
func (d *Debouncer) Run() {}
