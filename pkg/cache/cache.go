// Package cache provides the small in-memory TTL cache the tide source
// keys by calendar day.
package cache

import (
	"time"
)

// Timed is a cache that invalidates elements on a timer basis. It is not
// thread safe; callers serialize access.
type Timed[V any] struct {
	ttl   time.Duration
	cache map[string]element[V]
}

// element holds a timestamped value to save.
type element[V any] struct {
	value    V
	creation time.Time
}

// NewTimed creates a new Timed cache where elements will be invalidated
// after a time in cache corresponding to TTL.
func NewTimed[V any](ttl time.Duration) *Timed[V] {
	return &Timed[V]{
		ttl:   ttl,
		cache: make(map[string]element[V]),
	}
}

// Set assigns a value to a key.
func (c *Timed[V]) Set(key string, val V) {
	c.set(key, val, time.Now())
}

// set performs Set's work with the wall clock factored out.
func (c *Timed[V]) set(key string, val V, t time.Time) {
	c.cache[key] = element[V]{
		value:    val,
		creation: t,
	}
}

// Get retrieves a value for a key. The value may not exist or have expired,
// in which case ok will be false.
func (c *Timed[V]) Get(key string) (value V, ok bool) {
	return c.get(key, time.Now())
}

// get is like set in that the time is factored out.
func (c *Timed[V]) get(key string, t time.Time) (value V, ok bool) {
	// check if the element is in memory
	el, ok := c.cache[key]
	if !ok {
		var zero V
		return zero, false
	}

	// in memory elements might still be invalid
	if elapsed := t.Sub(el.creation); elapsed > c.ttl {
		delete(c.cache, key)
		var zero V
		return zero, false
	}

	return el.value, true
}

// Clear drops every entry so the next Get misses regardless of age.
func (c *Timed[V]) Clear() {
	c.cache = make(map[string]element[V])
}
