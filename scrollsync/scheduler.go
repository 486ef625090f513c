// ABOUTME: One-shot deferred callbacks used by refresh
// ABOUTME: Due callbacks are handed back to the host's event loop instead of running on a timer goroutine

package scrollsync

import "time"

// Scheduler runs fire once after delay, on the goroutine that owns the widgets
type Scheduler interface {
	Schedule(delay time.Duration, fire func())
}

// readyBuffer bounds how many due callbacks wait for the host to drain them
const readyBuffer = 64

// LoopScheduler waits out the delay on a timer and then queues the callback.
// Nothing runs until the host calls RunReady (or receives from Ready) on its own loop.
type LoopScheduler struct {
	ready chan func()
}

// NewLoopScheduler creates an empty scheduler
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{ready: make(chan func(), readyBuffer)}
}

// Schedule queues fire once delay has passed
func (s *LoopScheduler) Schedule(delay time.Duration, fire func()) {
	time.AfterFunc(delay, func() {
		s.ready <- fire
	})
}

// Ready delivers due callbacks; receivers must run them on the widgets' goroutine
func (s *LoopScheduler) Ready() <-chan func() {
	return s.ready
}

// RunReady runs every callback that is already due without blocking.
// Returns how many ran.
func (s *LoopScheduler) RunReady() int {
	n := 0

	for {
		select {
		case fire := <-s.ready:
			fire()
			n++
		default:
			return n
		}
	}
}
