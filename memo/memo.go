// Package memo provides a scoped memoization cache for recursive counting.
//
// A Cache is owned by one computation and discarded with it; it is never
// shared between goroutines or stored at package level.
package memo

// Cache memoizes values of type V by comparable key K.
// The zero value is not usable; call New.
type Cache[K comparable, V any] struct {
	m    map[K]V
	hits int
}

// New returns an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{m: make(map[K]V)}
}

// Get returns the value stored for k.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	v, ok := c.m[k]
	if ok {
		c.hits++
	}
	return v, ok
}

// Put stores v for k, replacing any earlier value.
func (c *Cache[K, V]) Put(k K, v V) {
	c.m[k] = v
}

// Do returns the cached value for k, computing and storing it with fn on
// a miss. fn may itself call Do for other keys.
func (c *Cache[K, V]) Do(k K, fn func() V) V {
	if v, ok := c.Get(k); ok {
		return v
	}
	v := fn()
	c.m[k] = v
	return v
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int { return len(c.m) }

// Hits returns how many lookups were answered from the cache.
func (c *Cache[K, V]) Hits() int { return c.hits }
