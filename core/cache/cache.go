package cache

import "sync"

// Cache is an append-only, concurrency-safe map.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		items: make(map[K]V),
	}
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[key]
	return v, ok
}

// Put stores value under key unless the key is already present.
// It returns the value held by the cache after the call.
func (c *Cache[K, V]) Put(key K, value V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.items[key]; ok {
		return existing
	}
	c.items[key] = value
	return value
}

// GetOrCompute returns the cached value for key, computing and storing it on a miss.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	// compute runs outside the lock; Put keeps the first stored value
	return c.Put(key, compute())
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
