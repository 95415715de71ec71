package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

func TestRealTimeProvider(t *testing.T) {
	t.Run("should report now in the configured location", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		now := NewRealTimeProvider(loc).Now()
		assert.Equal(t, loc, now.Location())
	})

	t.Run("should fire and stop timers", func(t *testing.T) {
		p := NewRealTimeProvider(nil)

		fired := make(chan struct{})
		p.AfterFunc(core.Millisecond, func() { close(fired) })
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("timer did not fire")
		}

		stopped := p.AfterFunc(core.Hour, func() { t.Error("stopped timer fired") })
		assert.True(t, stopped.Stop())
		assert.False(t, stopped.Stop())
	})

	t.Run("should bound contexts", func(t *testing.T) {
		ctx, cancel := NewRealTimeProvider(nil).WithTimeout(context.Background(), core.Millisecond)
		defer cancel()

		select {
		case <-ctx.Done():
			require.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
		case <-time.After(time.Second):
			t.Fatal("context did not expire")
		}
	})
}
