package sim

import (
	"sync"
	"time"
)

// Runner drives a Stepper on a fixed-interval tick for hosts without their
// own animation loop. Stop deterministically halts the tick: a step
// scheduled before cancellation never fires after Stop returns, so a
// torn-down session is never mutated by a dangling timer.
type Runner struct {
	mu      sync.Mutex
	cancel  chan struct{}
	running bool
}

// Start begins ticking step every interval. No-op while already running.
func (r *Runner) Start(interval time.Duration, step func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	cancel := make(chan struct{})
	r.cancel = cancel
	r.running = true

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-t.C:
				r.mu.Lock()
				// A tick already delivered can race Stop; re-check
				// under the lock so it never executes post-cancel.
				if r.cancel != cancel {
					r.mu.Unlock()
					return
				}
				step()
				r.mu.Unlock()
			}
		}
	}()
}

// Stop cancels the tick. After Stop returns, no further step runs.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	close(r.cancel)
	r.cancel = nil
	r.running = false
}

// Running reports whether a tick loop is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}
