// Package cache provides a small in-memory TTL cache used to serve
// composed profile reads without hitting the database on every request.
package cache

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// Cache is a mutex-guarded TTL cache keyed by user ID.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache whose entries stay fresh for ttl.
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value for key if it is still fresh, otherwise calls
// load and caches the result. force bypasses the freshness check. A failed
// load leaves any previously cached entry untouched, so a later non-forced
// read within the window can still be served from cache.
func (c *Cache[T]) Get(ctx context.Context, key string, force bool, load func(ctx context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	if !force {
		if e, ok := c.entries[key]; ok && c.now().Sub(e.fetchedAt) < c.ttl {
			c.mu.Unlock()
			return e.value, nil
		}
	}
	c.mu.Unlock()

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = entry[T]{value: value, fetchedAt: c.now()}
	c.mu.Unlock()
	return value, nil
}

// Invalidate drops the cached entry for key, if any.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateAll drops every cached entry.
func (c *Cache[T]) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry[T])
	c.mu.Unlock()
}

// Len reports the number of cached entries, fresh or stale.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
