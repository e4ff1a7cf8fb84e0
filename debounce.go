package recordstore

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single invocation after a quiet
// period. SetSearchQuery is a pure write and debouncing is the caller's job;
// this is the helper callers feed keystrokes through:
//
//	d := recordstore.NewDebouncer(300 * time.Millisecond)
//	onKeystroke := func(q string) {
//		store.SetSearchQuery(q)
//		d.Trigger(func() { _ = store.SearchRecords(ctx, q, "") })
//	}
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

// NewDebouncer returns a Debouncer with the given quiet period.
func NewDebouncer(wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = 250 * time.Millisecond
	}
	return &Debouncer{wait: wait}
}

// Trigger schedules fn to run after the quiet period, replacing any
// previously scheduled function. fn runs on a timer goroutine.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
