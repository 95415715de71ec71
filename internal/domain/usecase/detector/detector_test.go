package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/entity"
	coremocks "github.com/amirhossein-jamali/ledger-dashboard/mocks/port/core"
)

type row string

func (r row) RecordID() string { return string(r) }

func rows(ids ...string) []row {
	out := make([]row, len(ids))
	for i, id := range ids {
		out[i] = row(id)
	}
	return out
}

func newTestDetector(t *testing.T) (*Detector[row], *coremocks.FakeTimeProvider) {
	clock := coremocks.NewFakeTimeProvider(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))
	logger := coremocks.NewMockLogger(t)
	logger.On("Info", "New records detected", mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	return NewDetector[row]("transactions", DefaultWindow, clock, logger), clock
}

func TestDetect(t *testing.T) {
	t.Run("should flag nothing on first invocation", func(t *testing.T) {
		assert.Empty(t, Detect(nil, rows("a", "b")))
		assert.Empty(t, Detect(map[string]struct{}{}, rows("a", "b")))
	})

	t.Run("should return records with unseen identifiers", func(t *testing.T) {
		previous := IDSet(rows("a", "b"))
		assert.Equal(t, rows("c", "d"), Detect(previous, rows("a", "c", "b", "d")))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		previous := IDSet(rows("a"))
		current := rows("a", "b", "c")

		first := Detect(previous, current)
		second := Detect(previous, current)
		assert.Equal(t, first, second)
		assert.Len(t, previous, 1)
	})
}

func TestDetector_Observe(t *testing.T) {
	t.Run("should not flag the initial load", func(t *testing.T) {
		d, clock := newTestDetector(t)

		assert.Empty(t, d.Observe(rows("a", "b")))
		assert.False(t, d.Freshness().HasNew)
		assert.Equal(t, 0, clock.Pending())
	})

	t.Run("should flag a batch and clear it after the window", func(t *testing.T) {
		d, clock := newTestDetector(t)
		var updates []entity.Freshness
		d.Subscribe(func(f entity.Freshness) { updates = append(updates, f) })

		d.Observe(rows("a"))
		fresh := d.Observe(rows("a", "b", "c"))

		assert.Equal(t, rows("b", "c"), fresh)
		state := d.Freshness()
		assert.True(t, state.HasNew)
		assert.Equal(t, 2, state.Count)
		assert.Equal(t, clock.Now().Add(30*time.Second), state.ExpiresAt)
		assert.True(t, d.IsNew("b"))
		assert.False(t, d.IsNew("a"))

		clock.Advance(29 * time.Second)
		assert.True(t, d.Freshness().HasNew)

		clock.Advance(time.Second)
		assert.False(t, d.Freshness().HasNew)
		assert.False(t, d.IsNew("b"))

		require.Len(t, updates, 2)
		assert.True(t, updates[0].HasNew)
		assert.False(t, updates[1].HasNew)
	})

	t.Run("should restart the window on a later batch", func(t *testing.T) {
		d, clock := newTestDetector(t)

		d.Observe(rows("a"))
		d.Observe(rows("a", "b"))
		clock.Advance(20 * time.Second)

		d.Observe(rows("a", "b", "c"))
		assert.Equal(t, 1, clock.Pending())
		assert.Equal(t, 1, d.Freshness().Count)
		assert.True(t, d.IsNew("c"))
		assert.False(t, d.IsNew("b"))

		clock.Advance(20 * time.Second)
		assert.True(t, d.Freshness().HasNew)

		clock.Advance(10 * time.Second)
		assert.False(t, d.Freshness().HasNew)
	})

	t.Run("should keep the flag when a later snapshot has nothing new", func(t *testing.T) {
		d, _ := newTestDetector(t)

		d.Observe(rows("a"))
		d.Observe(rows("a", "b"))
		assert.Empty(t, d.Observe(rows("a", "b")))
		assert.True(t, d.Freshness().HasNew)
	})
}

func TestDetector_Acknowledge(t *testing.T) {
	d, clock := newTestDetector(t)

	d.Observe(rows("a"))
	d.Observe(rows("a", "b"))
	d.Acknowledge()

	assert.False(t, d.Freshness().HasNew)
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(time.Minute)
	assert.False(t, d.Freshness().HasNew)

	d.Observe(rows("a", "b", "c"))
	assert.True(t, d.Freshness().HasNew)

	d.Close()
	assert.Equal(t, 0, clock.Pending())
}
