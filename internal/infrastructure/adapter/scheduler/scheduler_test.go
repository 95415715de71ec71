package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	coremocks "github.com/amirhossein-jamali/ledger-dashboard/mocks/port/core"
)

type refresherFunc func(ctx context.Context) error

func (f refresherFunc) Refresh(ctx context.Context) error { return f(ctx) }

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestRefreshScheduler_RunOnce(t *testing.T) {
	t.Run("should refresh every dataset in order", func(t *testing.T) {
		s := NewRefreshScheduler(time.UTC, time.Second, quietLogger(t))
		var order []string
		s.Register("transactions", refresherFunc(func(context.Context) error {
			order = append(order, "transactions")
			return nil
		}))
		s.Register("orders", refresherFunc(func(context.Context) error {
			order = append(order, "orders")
			return nil
		}))

		assert.Equal(t, 0, s.RunOnce(context.Background()))
		assert.Equal(t, []string{"transactions", "orders"}, order)
	})

	t.Run("should keep going after a failure", func(t *testing.T) {
		logger := coremocks.NewMockLogger(t)
		logger.On("Debug", mock.Anything, mock.Anything).Maybe()
		logger.EXPECT().Error("Scheduled refresh failed", mock.MatchedBy(func(f map[string]any) bool {
			return f["dataset"] == "transactions" && f["error"] == "boom"
		})).Once()

		s := NewRefreshScheduler(time.UTC, 0, logger)
		var ordersRefreshed bool
		s.Register("transactions", refresherFunc(func(context.Context) error { return errors.New("boom") }))
		s.Register("orders", refresherFunc(func(context.Context) error {
			ordersRefreshed = true
			return nil
		}))

		assert.Equal(t, 1, s.RunOnce(context.Background()))
		assert.True(t, ordersRefreshed)
	})

	t.Run("should bound each refresh by the timeout", func(t *testing.T) {
		s := NewRefreshScheduler(time.UTC, 10*time.Millisecond, quietLogger(t))
		s.Register("slow", refresherFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}))

		assert.Equal(t, 1, s.RunOnce(context.Background()))
	})

	t.Run("should stop once the context is canceled", func(t *testing.T) {
		s := NewRefreshScheduler(time.UTC, 0, quietLogger(t))
		ctx, cancel := context.WithCancel(context.Background())
		var calls int
		s.Register("first", refresherFunc(func(context.Context) error {
			calls++
			cancel()
			return nil
		}))
		s.Register("second", refresherFunc(func(context.Context) error {
			calls++
			return nil
		}))

		s.RunOnce(ctx)
		assert.Equal(t, 1, calls)
	})
}

func TestRefreshScheduler_Start(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		s := NewRefreshScheduler(time.UTC, 0, quietLogger(t))
		err := s.Start(context.Background(), "every now and then")
		assert.Error(t, err)
	})

	t.Run("should run on schedule until stopped", func(t *testing.T) {
		s := NewRefreshScheduler(time.UTC, 0, quietLogger(t))
		var runs atomic.Int32
		s.Register("orders", refresherFunc(func(context.Context) error {
			runs.Add(1)
			return nil
		}))

		require.NoError(t, s.Start(context.Background(), "@every 1s"))
		assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

		stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Stop(stopCtx)
	})
}

func TestFieldsOf(t *testing.T) {
	assert.Equal(t, map[string]any{"entry": 1, "now": "x"}, fieldsOf([]any{"entry", 1, "now", "x", "dangling"}))
}
