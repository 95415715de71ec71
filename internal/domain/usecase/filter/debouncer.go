package filter

import (
	"sync"

	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// DefaultSearchDebounce is the trailing delay applied to search input
const DefaultSearchDebounce = 150 * coreport.Millisecond

// Debouncer runs the last triggered function once input has been stable for the delay.
// Each Trigger cancels the pending call before scheduling a new one.
type Debouncer struct {
	timeProvider coreport.TimeProvider
	delay        coreport.Duration

	mu         sync.Mutex
	timer      coreport.Timer
	generation uint64
}

// NewDebouncer creates a debouncer with the given trailing delay
func NewDebouncer(timeProvider coreport.TimeProvider, delay coreport.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &Debouncer{timeProvider: timeProvider, delay: delay}
}

// Trigger schedules fn, replacing any pending call
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	gen := d.generation
	d.timer = d.timeProvider.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if gen != d.generation {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending call. It returns false if nothing was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	pending := d.timer != nil
	d.cancelLocked()
	return pending
}

// Pending reports whether a call is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) cancelLocked() {
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
