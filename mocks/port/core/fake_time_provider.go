package core

import (
	"context"
	"sort"
	"sync"
	"time"

	core "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// FakeTimeProvider is a manually driven clock. Timers scheduled with AfterFunc
// fire synchronously, on the caller's goroutine, when Advance moves past them.
type FakeTimeProvider struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	provider *FakeTimeProvider
	at       time.Time
	fn       func()
	done     bool
}

// Stop implements core.Timer
func (t *fakeTimer) Stop() bool {
	t.provider.mu.Lock()
	defer t.provider.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// NewFakeTimeProvider creates a clock frozen at now
func NewFakeTimeProvider(now time.Time) *FakeTimeProvider {
	return &FakeTimeProvider{now: now}
}

// Now implements core.TimeProvider
func (p *FakeTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now
}

// Since implements core.TimeProvider
func (p *FakeTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(p.Now().Sub(t))
}

// AfterFunc implements core.TimeProvider
func (p *FakeTimeProvider) AfterFunc(d core.Duration, f func()) core.Timer {
	p.mu.Lock()
	defer p.mu.Unlock()
	timer := &fakeTimer{provider: p, at: p.now.Add(d.Std()), fn: f}
	p.timers = append(p.timers, timer)
	return timer
}

// WithTimeout implements core.TimeProvider. Deadlines use the real clock.
func (p *FakeTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// Advance moves the clock forward, firing every timer that falls due in order
func (p *FakeTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	target := p.now.Add(d)
	p.mu.Unlock()

	for {
		p.mu.Lock()
		next := p.nextDue(target)
		if next == nil {
			p.now = target
			p.mu.Unlock()
			return
		}
		next.done = true
		p.now = next.at
		p.mu.Unlock()

		next.fn()
	}
}

// Set jumps the clock to t without firing timers
func (p *FakeTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = t
}

// Pending returns the number of timers that have neither fired nor been stopped
func (p *FakeTimeProvider) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, t := range p.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (p *FakeTimeProvider) nextDue(target time.Time) *fakeTimer {
	live := p.timers[:0]
	for _, t := range p.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	p.timers = live

	sort.SliceStable(p.timers, func(i, j int) bool {
		return p.timers[i].at.Before(p.timers[j].at)
	})
	if len(p.timers) == 0 || p.timers[0].at.After(target) {
		return nil
	}
	return p.timers[0]
}
