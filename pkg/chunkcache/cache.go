package chunkcache

import (
	"container/list"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is a keyed, concurrent memo over K -> V, bounded to capacity
// entries by an LRU policy and coalescing concurrent builds for the
// same key via a single-flight group (spec §4.4). Eviction is safe
// because callers are expected to supply a pure builder: re-generating
// an evicted entry yields a bit-identical value.
type Cache[K comparable, V any] struct {
	capacity int

	mu      sync.Mutex
	entries map[K]*list.Element // key -> node in order (front = most recent)
	order   *list.List          // list.Element.Value is *cacheEntry[K,V]

	flight singleflight.Group
}

type cacheEntry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a Cache bounded to capacity entries. capacity must be
// positive; the facade is responsible for rejecting a non-positive
// cache_capacity at configuration-validation time (spec §7
// ConfigurationInvalid), not here.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache[K, V]{
		capacity: capacity,
		entries:  make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the cached value for key, building it with build if
// absent. Concurrent Get calls for the same key invoke build at most
// once; every caller observes the same (value, err) pair, and a failed
// build is never published to the cache (spec §4.4 "Publication").
//
// build runs outside any cache-wide lock: the single-flight group's
// internal bookkeeping lock only guards the in-flight map, not the
// builder itself (spec §5 "No lock held during generation").
func (c *Cache[K, V]) Get(key K, build func() (V, error)) (V, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	// singleflight keys on string, so we key the flight group on a
	// stable textual form of K rather than K itself.
	flightKey := keyString(key)

	result, err, _ := c.flight.Do(flightKey, func() (interface{}, error) {
		// Re-check under the flight group: another goroutine may have
		// published this key between our lookup and entering Do.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := build()
		if err != nil {
			return v, err
		}
		c.publish(key, v)
		return v, nil
	})

	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// lookup returns the cached value for key, if present, promoting it to
// most-recently-used.
func (c *Cache[K, V]) lookup(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry[K, V]).value, true
}

// publish stores value under key, evicting the least-recently-used
// entry if the cache is at capacity (spec §7: CacheCapacityExceeded is
// never surfaced, the cache evicts silently).
func (c *Cache[K, V]) publish(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*cacheEntry[K, V]).value = value
		c.order.MoveToFront(elem)
		return
	}

	elem := c.order.PushFront(&cacheEntry[K, V]{key: key, value: value})
	c.entries[key] = elem

	for len(c.entries) > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry[K, V]).key)
	}
}

// Len returns the current number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// keyString turns a comparable key into a string suitable for
// singleflight.Group.Do. Using %#v keeps distinct struct field values
// from colliding, which matters for the cache key invariant: equal
// (cx,cy) must always hit the same entry, and no two distinct keys may
// collide (spec §4.4 "Cache key invariant").
func keyString(key any) string {
	return fmt.Sprintf("%#v", key)
}
