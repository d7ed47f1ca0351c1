// Package autosave persists record snapshots on a debounced
// write-once-settled schedule.
package autosave

import (
	"sync"
	"time"
)

// Delay is a one-shot timer handle that can be canceled or rescheduled.
// Once the callback has started or Cancel has won, the handle is spent:
// further Cancel and Reschedule calls are no-ops. A spent handle holds no
// live timer, so arming a fresh Delay per edit never leaks timers.
type Delay struct {
	timer *time.Timer
	mu    sync.Mutex
	spent bool
}

// After arms a delay that runs fn once dur elapses.
func After(dur time.Duration, fn func()) *Delay {
	d := &Delay{}
	d.timer = time.AfterFunc(dur, func() {
		d.mu.Lock()
		if d.spent {
			d.mu.Unlock()
			return
		}
		d.spent = true
		d.mu.Unlock()
		fn()
	})
	return d
}

// Cancel stops the delay. It reports whether the callback was prevented;
// false means the callback already ran or cancellation already happened.
func (d *Delay) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.spent {
		return false
	}
	d.spent = true
	d.timer.Stop()
	return true
}

// Reschedule restarts the countdown with a new duration. It reports
// whether the delay was still live to restart.
func (d *Delay) Reschedule(dur time.Duration) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.spent {
		return false
	}
	d.timer.Stop()
	d.timer.Reset(dur)
	return true
}
