// Package cache provides the in-memory TTL cache that shields the UI from
// bursty, duplicate balance and nonce lookups.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value  any
	expiry time.Time
}

// Cache is a TTL cache with request deduplication. Expiry is checked lazily
// on read; concurrent fetches for the same key are collapsed into a single
// underlying call.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Get returns the cached value for key, or (nil, false) if absent or expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiry) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for the given TTL.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, expiry: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// FetchWithDedup returns the cached value for key if fresh; otherwise it
// invokes fetch and caches the result for ttl. While a fetch for key is in
// flight, all concurrent callers wait for it and share its result instead of
// issuing duplicate calls. A failed fetch is not cached, and any previously
// cached value stays valid until its own TTL expires.
func (c *Cache) FetchWithDedup(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	// the fetch is shared by every deduplicated waiter, so it must not die
	// with whichever caller happened to start it
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		v, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.Set(key, v, ttl)
		return v, nil
	})

	select {
	case res := <-ch:
		// the in-flight slot clears when the call completes, so the next
		// miss triggers a fresh fetch
		c.group.Forget(key)
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Clear invalidates a single key, e.g. after sending a transaction from the
// corresponding address.
func (c *Cache) Clear(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// ClearAll invalidates everything, e.g. on wallet switch.
func (c *Cache) ClearAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
