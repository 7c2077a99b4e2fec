package session

import (
	"sync"
	"time"
)

// debouncer delays a function until triggers have been quiet for a fixed
// interval. Each Trigger cancels the previous pending call and restarts the
// timer; only a not-yet-fired call can be cancelled.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

func (d *debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
