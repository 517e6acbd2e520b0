package save

import (
	"sync"
	"time"

	"github.com/appengine-ltd/homestead/internal/game"
)

// Debouncer coalesces bursts of state changes into a single write. Every
// Mark restarts the idle window; the flush callback runs once the window
// passes without another mark. Rapid gameplay therefore touches the disk at
// most once per window instead of once per action.
//
// Mark takes a snapshot captured by the caller, so the timer goroutine only
// ever reads its own copy and the live aggregate stays single-writer.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	flush   func(game.FarmState)
	pending *game.FarmState
	timer   *time.Timer
	closed  bool
}

func NewDebouncer(delay time.Duration, flush func(game.FarmState)) *Debouncer {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &Debouncer{delay: delay, flush: flush}
}

// Mark records that state changed. The snapshot replaces any pending one, so
// a burst of marks results in a single write of the latest state.
func (d *Debouncer) Mark(snapshot game.FarmState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.pending = &snapshot
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.closed || d.pending == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	snapshot := d.pending
	d.pending = nil
	flush := d.flush
	d.mu.Unlock()
	if flush != nil {
		flush(*snapshot)
	}
}

// Flush runs any pending write immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	snapshot := d.pending
	d.pending = nil
	flush := d.flush
	closed := d.closed
	d.mu.Unlock()
	if snapshot != nil && !closed && flush != nil {
		flush(*snapshot)
	}
}

// Close flushes any pending write and stops the debouncer for good.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	snapshot := d.pending
	d.pending = nil
	alreadyClosed := d.closed
	d.closed = true
	flush := d.flush
	d.mu.Unlock()
	if snapshot != nil && !alreadyClosed && flush != nil {
		flush(*snapshot)
	}
}
