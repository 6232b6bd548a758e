// Package debounce provides a timer that resets on every trigger and fires its
// callback only after a quiet window with no further triggers.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	fn     func()
	timer  *time.Timer
}

func New(window time.Duration, fn func()) *Debouncer {
	if fn == nil {
		panic("debounce: fn cannot be nil")
	}
	return &Debouncer{
		window: window,
		fn:     fn,
	}
}

// Trigger starts the quiet window, or resets it if one is already running.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// Stop cancels a pending fire, if any. Trigger may be called again afterward.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
