package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface on the wall clock
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a time provider reporting times in loc (local time when nil)
func NewRealTimeProvider(loc *time.Location) core.TimeProvider {
	return &RealTimeProvider{location: loc}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	if p.location == nil {
		return time.Now()
	}
	return time.Now().In(p.location)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// AfterFunc runs f on its own goroutine after d. *time.Timer satisfies core.Timer.
func (p *RealTimeProvider) AfterFunc(d core.Duration, f func()) core.Timer {
	return time.AfterFunc(d.Std(), f)
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
