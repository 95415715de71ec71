package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

// MemoryCache implements core.Cache on an in-process go-cache instance.
// Snapshots are stored without expiry; the janitor only sweeps entries set
// with a TTL through SetWithTTL.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates an empty cache whose janitor runs every cleanupInterval
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

var _ core.Cache = (*MemoryCache)(nil)

// Get returns the value stored under key
func (c *MemoryCache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

// Set stores value under key until it is overwritten or flushed
func (c *MemoryCache) Set(key string, value any) {
	c.cache.Set(key, value, gocache.NoExpiration)
}

// SetWithTTL stores value under key for ttl
func (c *MemoryCache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete removes key
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// Flush removes every entry
func (c *MemoryCache) Flush() {
	c.cache.Flush()
}

// ItemCount returns the number of entries, including expired ones not yet swept
func (c *MemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}

// GetOrAdd returns the live value under key, storing create() with ttl when there is
// none. Concurrent callers for the same key get the same value.
func (c *MemoryCache) GetOrAdd(key string, ttl time.Duration, create func() any) any {
	for {
		if v, ok := c.cache.Get(key); ok {
			return v
		}
		v := create()
		if err := c.cache.Add(key, v, ttl); err == nil {
			return v
		}
	}
}
