package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	t.Run("should keep snapshots until flushed", func(t *testing.T) {
		c := NewMemoryCache(time.Minute)
		c.Set("transactions:all", []string{"a", "b"})
		c.Set("orders:all", []string{"c"})

		v, ok := c.Get("transactions:all")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, v)
		assert.Equal(t, 2, c.ItemCount())

		c.Delete("orders:all")
		_, ok = c.Get("orders:all")
		assert.False(t, ok)

		c.Flush()
		assert.Equal(t, 0, c.ItemCount())
	})

	t.Run("should expire entries set with a ttl", func(t *testing.T) {
		c := NewMemoryCache(time.Minute)
		c.SetWithTTL("short", 1, time.Millisecond)

		assert.Eventually(t, func() bool {
			_, ok := c.Get("short")
			return !ok
		}, time.Second, 5*time.Millisecond)
	})
}

func TestMemoryCache_GetOrAdd(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	calls := 0
	create := func() any {
		calls++
		return calls
	}

	assert.Equal(t, 1, c.GetOrAdd("client:1", time.Minute, create))
	assert.Equal(t, 1, c.GetOrAdd("client:1", time.Minute, create))
	assert.Equal(t, 2, c.GetOrAdd("client:2", time.Minute, create))
	assert.Equal(t, 2, calls)
}
