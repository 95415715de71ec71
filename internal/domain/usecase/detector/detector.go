package detector

import (
	"sync"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// DefaultWindow is how long a batch of new records stays flagged
const DefaultWindow = 30 * coreport.Second

// IDSet collects the identifiers of records
func IDSet[T entity.Record](records []T) map[string]struct{} {
	ids := make(map[string]struct{}, len(records))
	for _, r := range records {
		ids[r.RecordID()] = struct{}{}
	}
	return ids
}

// Detect returns the records whose identifier is not in previousIDs.
// With no previous identifiers nothing is new, so an initial load is never flagged.
func Detect[T entity.Record](previousIDs map[string]struct{}, current []T) []T {
	if len(previousIDs) == 0 {
		return nil
	}
	var fresh []T
	for _, r := range current {
		if _, seen := previousIDs[r.RecordID()]; !seen {
			fresh = append(fresh, r)
		}
	}
	return fresh
}

// Detector diffs successive snapshots of a dataset and keeps a "new records"
// flag raised for a bounded window after each non-empty batch.
type Detector[T entity.Record] struct {
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	dataset      string
	window       coreport.Duration

	mu         sync.Mutex
	previous   map[string]struct{}
	batch      map[string]struct{}
	freshness  entity.Freshness
	timer      coreport.Timer
	generation uint64

	listenersMu sync.Mutex
	listeners   map[int]func(entity.Freshness)
	nextID      int
}

// NewDetector creates a detector whose flag clears window after the latest batch
func NewDetector[T entity.Record](
	dataset string,
	window coreport.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Detector[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Detector[T]{
		timeProvider: timeProvider,
		logger:       logger,
		dataset:      dataset,
		window:       window,
		listeners:    make(map[int]func(entity.Freshness)),
	}
}

// Observe diffs current against the previously observed snapshot and remembers
// current for the next call. A non-empty batch raises the flag and restarts the window.
func (d *Detector[T]) Observe(current []T) []T {
	d.mu.Lock()
	fresh := Detect(d.previous, current)
	d.previous = IDSet(current)

	if len(fresh) == 0 {
		d.mu.Unlock()
		return nil
	}

	d.stopTimerLocked()
	d.batch = IDSet(fresh)
	d.freshness = entity.Freshness{
		HasNew:    true,
		Count:     len(fresh),
		ExpiresAt: d.timeProvider.Now().Add(d.window.Std()),
	}
	gen := d.generation
	d.timer = d.timeProvider.AfterFunc(d.window, func() { d.expire(gen) })
	state := d.freshness
	d.mu.Unlock()

	d.logger.Info("New records detected", map[string]any{
		"dataset": d.dataset,
		"count":   len(fresh),
	})
	d.notify(state)
	return fresh
}

// Acknowledge clears the flag immediately and cancels the pending expiry.
// Nothing is re-armed until the next observed batch.
func (d *Detector[T]) Acknowledge() {
	d.mu.Lock()
	if !d.freshness.HasNew {
		d.mu.Unlock()
		return
	}
	d.stopTimerLocked()
	d.clearLocked()
	d.mu.Unlock()

	d.notify(entity.Freshness{})
}

// Freshness returns the current flag state
func (d *Detector[T]) Freshness() entity.Freshness {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.freshness
}

// IsNew reports whether id belongs to the latest batch while the flag is raised
func (d *Detector[T]) IsNew(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.freshness.HasNew {
		return false
	}
	_, ok := d.batch[id]
	return ok
}

// Subscribe registers fn to be called whenever the flag changes
func (d *Detector[T]) Subscribe(fn func(entity.Freshness)) func() {
	d.listenersMu.Lock()
	defer d.listenersMu.Unlock()
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn
	return func() {
		d.listenersMu.Lock()
		defer d.listenersMu.Unlock()
		delete(d.listeners, id)
	}
}

// Close cancels the pending expiry timer
func (d *Detector[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopTimerLocked()
}

func (d *Detector[T]) expire(gen uint64) {
	d.mu.Lock()
	if gen != d.generation || !d.freshness.HasNew {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.clearLocked()
	d.mu.Unlock()

	d.logger.Debug("Freshness window expired", map[string]any{"dataset": d.dataset})
	d.notify(entity.Freshness{})
}

// stopTimerLocked cancels the pending timer; bumping the generation makes a
// callback that already started a no-op.
func (d *Detector[T]) stopTimerLocked() {
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Detector[T]) clearLocked() {
	d.freshness = entity.Freshness{}
	d.batch = nil
}

func (d *Detector[T]) notify(state entity.Freshness) {
	d.listenersMu.Lock()
	listeners := make([]func(entity.Freshness), 0, len(d.listeners))
	for _, fn := range d.listeners {
		listeners = append(listeners, fn)
	}
	d.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
}
