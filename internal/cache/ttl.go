// Package cache provides a small TTL key-value store used to keep external
// API queries at or below their natural update cadence.
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a key→value store with per-entry expiry. Expiry is lazy: an entry
// past its TTL is invisible to Get but is only removed when overwritten,
// never by a background sweep. There is no eviction beyond TTL; unbounded
// key growth is accepted at this scope (the key space is a handful of fixed
// API cache keys).
type TTL[V any] struct {
	clock   clockwork.Clock
	mu      sync.Mutex
	entries map[string]entry[V]
}

// New creates a TTL cache. Pass nil to use the real clock; tests inject a
// fake clock to advance virtual time.
func New[V any](clock clockwork.Clock) *TTL[V] {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TTL[V]{
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the live value for key. A value past its TTL behaves as if it
// were never set. The expired entry itself is kept until overwritten so
// GetStale can still serve it as a fallback.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.clock.Now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetStale returns the most recently stored value for key even if its TTL
// has elapsed. Used as a last-known-good fallback when a refresh fails.
func (c *TTL[V]) GetStale(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for ttl.
func (c *TTL[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.clock.Now().Add(ttl),
	}
}

// Len returns the number of stored entries, expired or not.
func (c *TTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
