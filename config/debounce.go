package config

import (
	"sync"
	"time"
)

// DefaultDebounce is how long Watch waits for a burst of file events to
// settle before reloading.
const DefaultDebounce = 200 * time.Millisecond

// debouncer runs only the last of a burst of triggers, after the burst has
// been quiet for the configured duration.
type debouncer struct {
	wait  time.Duration
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newDebouncer(wait time.Duration) *debouncer {
	if wait <= 0 {
		wait = DefaultDebounce
	}
	return &debouncer{wait: wait}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// A timer that already fired can lose the race with a newer trigger.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
