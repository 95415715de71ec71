package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	coreport "github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// DefaultSchedule refetches every dataset twice a minute
const DefaultSchedule = "@every 30s"

// Refresher reloads one dataset
type Refresher interface {
	Refresh(ctx context.Context) error
}

type namedRefresher struct {
	name      string
	refresher Refresher
}

// RefreshScheduler periodically refreshes the registered datasets so the change
// detectors see new records without any client polling. A run still in progress
// makes the next tick a no-op.
type RefreshScheduler struct {
	cron    *cron.Cron
	logger  coreport.Logger
	timeout time.Duration

	mu         sync.Mutex
	refreshers []namedRefresher
	cancel     context.CancelFunc
}

// NewRefreshScheduler creates a scheduler evaluating schedules in loc. Each refresh
// is bounded by timeout when it is positive.
func NewRefreshScheduler(loc *time.Location, timeout time.Duration, logger coreport.Logger) *RefreshScheduler {
	if loc == nil {
		loc = time.UTC
	}
	cl := cronLogger{logger: logger}
	return &RefreshScheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger:  logger,
		timeout: timeout,
	}
}

// Register adds a dataset to every run, in registration order
func (s *RefreshScheduler) Register(name string, refresher Refresher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshers = append(s.refreshers, namedRefresher{name: name, refresher: refresher})
}

// Start registers the refresh run on the cron schedule and starts the loop. Runs are canceled
// through ctx or Stop.
func (s *RefreshScheduler) Start(ctx context.Context, schedule string) error {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	runCtx, cancel := context.WithCancel(ctx)
	if _, err := s.cron.AddFunc(schedule, func() { s.RunOnce(runCtx) }); err != nil {
		cancel()
		return fmt.Errorf("unable to schedule refresh %q: %w", schedule, err)
	}

	s.mu.Lock()
	s.cancel = cancel
	count := len(s.refreshers)
	s.mu.Unlock()

	s.cron.Start()
	s.logger.Info("Refresh scheduler started", map[string]any{
		"schedule": schedule,
		"datasets": count,
	})
	return nil
}

// Stop halts scheduling, cancels a run in progress and waits for it to return
// or for ctx to end
func (s *RefreshScheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	select {
	case <-s.cron.Stop().Done():
		s.logger.Info("Refresh scheduler stopped", nil)
	case <-ctx.Done():
		s.logger.Warn("Refresh scheduler stop timed out", map[string]any{
			"error": ctx.Err().Error(),
		})
	}
}

// RunOnce refreshes every registered dataset. A failing dataset is logged and does
// not stop the others; the number of failures is returned.
func (s *RefreshScheduler) RunOnce(ctx context.Context) int {
	s.mu.Lock()
	refreshers := append([]namedRefresher(nil), s.refreshers...)
	s.mu.Unlock()

	failed := 0
	for _, r := range refreshers {
		if ctx.Err() != nil {
			return failed
		}
		if err := s.refresh(ctx, r); err != nil {
			failed++
			s.logger.Error("Scheduled refresh failed", map[string]any{
				"dataset": r.name,
				"error":   err.Error(),
			})
			continue
		}
		s.logger.Debug("Scheduled refresh completed", map[string]any{
			"dataset": r.name,
		})
	}
	return failed
}

func (s *RefreshScheduler) refresh(ctx context.Context, r namedRefresher) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return r.refresher.Refresh(ctx)
}

// cronLogger routes cron's own messages through the core logger
type cronLogger struct {
	logger coreport.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, fieldsOf(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	fields := fieldsOf(keysAndValues)
	fields["error"] = err.Error()
	l.logger.Error("cron: "+msg, fields)
}

func fieldsOf(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
