package core

import "sync"

// FakeCache is an in-memory core.Cache that records how often it was read and written
type FakeCache struct {
	mu      sync.Mutex
	items   map[string]any
	Gets    int
	Sets    int
	Hits    int
	Deletes int
	Flushes int
}

// NewFakeCache creates an empty cache
func NewFakeCache() *FakeCache {
	return &FakeCache{items: make(map[string]any)}
}

// Get implements core.Cache
func (c *FakeCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	v, ok := c.items[key]
	if ok {
		c.Hits++
	}
	return v, ok
}

// Set implements core.Cache
func (c *FakeCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	c.items[key] = value
}

// Delete implements core.Cache
func (c *FakeCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Deletes++
	delete(c.items, key)
}

// Flush implements core.Cache
func (c *FakeCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Flushes++
	c.items = make(map[string]any)
}

// ItemCount implements core.Cache
func (c *FakeCache) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
