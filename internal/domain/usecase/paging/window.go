package paging

import (
	"fmt"
	"math"
	"sync"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// Window defaults
const (
	DefaultRowHeight  = 48.0
	DefaultBufferRows = 10
	DefaultThrottle   = 16 * coreport.Millisecond
	DefaultThreshold  = 5
)

// ComputeVisible returns the rows to materialize for a scroll position.
// The scroll offset is clamped into the scrollable extent, so the window always
// holds at least min(TotalRows, ceil(ContainerHeight/RowHeight)) rows.
func ComputeVisible(v entity.Viewport) (entity.VisibleRange, error) {
	if !(v.RowHeight > 0) || math.IsInf(v.RowHeight, 0) {
		return entity.VisibleRange{}, fmt.Errorf("%w: row height %v", errs.ErrInvalidViewport, v.RowHeight)
	}
	if !(v.ContainerHeight >= 0) || math.IsInf(v.ContainerHeight, 0) {
		return entity.VisibleRange{}, fmt.Errorf("%w: container height %v", errs.ErrInvalidViewport, v.ContainerHeight)
	}
	if v.BufferRows < 0 || v.TotalRows < 0 || math.IsNaN(v.ScrollTop) {
		return entity.VisibleRange{}, errs.ErrInvalidViewport
	}

	totalHeight := float64(v.TotalRows) * v.RowHeight
	maxScroll := math.Max(0, totalHeight-v.ContainerHeight)
	scrollTop := math.Min(math.Max(0, v.ScrollTop), maxScroll)

	first := int(math.Floor(scrollTop / v.RowHeight))
	visible := int(math.Ceil(v.ContainerHeight / v.RowHeight))

	start := max(0, first-v.BufferRows)
	end := min(v.TotalRows, first+visible+v.BufferRows)
	start = min(start, end)

	return entity.VisibleRange{
		StartIndex:  start,
		EndIndex:    end,
		OffsetY:     float64(start) * v.RowHeight,
		TotalHeight: totalHeight,
	}, nil
}

// WindowConfig tunes a VirtualWindow
type WindowConfig struct {
	RowHeight  float64
	BufferRows int
	Throttle   coreport.Duration
	Threshold  int
}

// DefaultWindowConfig returns the stock window tuning
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		RowHeight:  DefaultRowHeight,
		BufferRows: DefaultBufferRows,
		Throttle:   DefaultThrottle,
		Threshold:  DefaultThreshold,
	}
}

// VirtualWindow keeps the visible range of a scrolled list. Scroll events are
// coalesced to one recomputation per throttle period, and a recomputed range is
// only published when it moved past the threshold, reached a boundary or the
// row count changed.
type VirtualWindow struct {
	timeProvider coreport.TimeProvider
	cfg          WindowConfig

	mu              sync.Mutex
	containerHeight float64
	scrollTop       float64
	totalRows       int
	current         entity.VisibleRange
	timer           coreport.Timer
	generation      uint64

	listenersMu sync.Mutex
	listeners   map[int]func(entity.VisibleRange)
	nextID      int
}

// NewVirtualWindow creates a window for a container of the given height
func NewVirtualWindow(timeProvider coreport.TimeProvider, cfg WindowConfig, containerHeight float64) (*VirtualWindow, error) {
	if cfg.Throttle <= 0 {
		cfg.Throttle = DefaultThrottle
	}
	if cfg.Threshold < 0 {
		cfg.Threshold = DefaultThreshold
	}
	w := &VirtualWindow{
		timeProvider:    timeProvider,
		cfg:             cfg,
		containerHeight: containerHeight,
		listeners:       make(map[int]func(entity.VisibleRange)),
	}
	r, err := ComputeVisible(w.viewportLocked())
	if err != nil {
		return nil, err
	}
	w.current = r
	return w, nil
}

// Current returns the last published range
func (w *VirtualWindow) Current() entity.VisibleRange {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// OnScroll records the new scroll offset and schedules a recomputation unless one is already pending
func (w *VirtualWindow) OnScroll(scrollTop float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scrollTop = scrollTop
	if w.timer != nil {
		return
	}
	gen := w.generation
	w.timer = w.timeProvider.AfterFunc(w.cfg.Throttle, func() { w.frame(gen) })
}

// SetTotalRows changes the row count and recomputes immediately
func (w *VirtualWindow) SetTotalRows(total int) {
	w.mu.Lock()
	if total < 0 {
		total = 0
	}
	changed := total != w.totalRows
	w.totalRows = total
	r, publish := w.recomputeLocked(changed)
	w.mu.Unlock()

	if publish {
		w.notify(r)
	}
}

// SetContainerHeight changes the viewport height and recomputes immediately
func (w *VirtualWindow) SetContainerHeight(height float64) {
	w.mu.Lock()
	w.containerHeight = height
	r, publish := w.recomputeLocked(true)
	w.mu.Unlock()

	if publish {
		w.notify(r)
	}
}

// Reset scrolls back to the top, dropping any pending frame
func (w *VirtualWindow) Reset() {
	w.mu.Lock()
	w.cancelLocked()
	w.scrollTop = 0
	r, publish := w.recomputeLocked(false)
	w.mu.Unlock()

	if publish {
		w.notify(r)
	}
}

// Subscribe registers fn to be called with every published range
func (w *VirtualWindow) Subscribe(fn func(entity.VisibleRange)) func() {
	w.listenersMu.Lock()
	defer w.listenersMu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = fn
	return func() {
		w.listenersMu.Lock()
		defer w.listenersMu.Unlock()
		delete(w.listeners, id)
	}
}

// Close drops any pending frame
func (w *VirtualWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelLocked()
}

func (w *VirtualWindow) frame(gen uint64) {
	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	r, publish := w.recomputeLocked(false)
	w.mu.Unlock()

	if publish {
		w.notify(r)
	}
}

func (w *VirtualWindow) recomputeLocked(force bool) (entity.VisibleRange, bool) {
	next, err := ComputeVisible(w.viewportLocked())
	if err != nil {
		return w.current, false
	}
	if !force && !w.shouldPublish(next) {
		return w.current, false
	}
	w.current = next
	return next, true
}

func (w *VirtualWindow) shouldPublish(next entity.VisibleRange) bool {
	if next == w.current {
		return false
	}
	if abs(next.StartIndex-w.current.StartIndex) > w.cfg.Threshold ||
		abs(next.EndIndex-w.current.EndIndex) > w.cfg.Threshold {
		return true
	}
	// Without this the last few rows would never render.
	return next.StartIndex == 0 || next.EndIndex == w.totalRows || next.TotalHeight != w.current.TotalHeight
}

func (w *VirtualWindow) viewportLocked() entity.Viewport {
	return entity.Viewport{
		ScrollTop:       w.scrollTop,
		ContainerHeight: w.containerHeight,
		RowHeight:       w.cfg.RowHeight,
		BufferRows:      w.cfg.BufferRows,
		TotalRows:       w.totalRows,
	}
}

func (w *VirtualWindow) cancelLocked() {
	w.generation++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *VirtualWindow) notify(r entity.VisibleRange) {
	w.listenersMu.Lock()
	listeners := make([]func(entity.VisibleRange), 0, len(w.listeners))
	for _, fn := range w.listeners {
		listeners = append(listeners, fn)
	}
	w.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(r)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
