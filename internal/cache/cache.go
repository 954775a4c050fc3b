// Package cache provides a small generic memo cache for derived
// geometry. Entries are keyed by an identity handle (a generation id
// bumped whenever the underlying point data is rebound), so a changed
// key always recomputes and stale entries age out under a soft limit.
// Explicit Delete covers the common case of a shape being destroyed.
package cache

import "sync"

// Cache is a generic thread-safe memo cache with a soft size limit.
// When the cache exceeds the limit, the least recently used quarter of
// the entries is evicted.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      int64 // monotonic access counter
}

type entry[V any] struct {
	value V
	atime int64 // tick at last access
}

// New creates a cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// GetOrCreate returns the cached value for key, computing and storing
// it with create on a miss. create runs under the cache lock so a key
// is only ever computed once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.tick++
		e.atime = c.tick
		return e.value
	}

	value := create()
	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return value
}

// Set stores a value, evicting old entries if over the soft limit.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &entry[V]{value: value, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// Delete removes an entry. Returns true if the entry existed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}
	return false
}

// DeleteFunc removes every entry whose key matches the predicate.
// Used to evict all cache lines belonging to one shape handle.
func (c *Cache[K, V]) DeleteFunc(match func(K) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k := range c.entries {
		if match(k) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the soft limit of the cache.
func (c *Cache[K, V]) Capacity() int {
	return c.softLimit
}

// evictOldest removes least-recently-used entries until the cache is
// at 75% of the soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := c.softLimit * 3 / 4
	if target < 1 {
		target = 1
	}
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	keys := make([]K, 0, len(c.entries))
	atimes := make([]int64, 0, len(c.entries))
	for k, e := range c.entries {
		keys = append(keys, k)
		atimes = append(atimes, e.atime)
	}

	// Selection of the oldest few; eviction batches are small.
	for i := 0; i < toEvict && i < len(keys); i++ {
		minIdx := i
		for j := i + 1; j < len(keys); j++ {
			if atimes[j] < atimes[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			keys[i], keys[minIdx] = keys[minIdx], keys[i]
			atimes[i], atimes[minIdx] = atimes[minIdx], atimes[i]
		}
		delete(c.entries, keys[i])
	}
}
