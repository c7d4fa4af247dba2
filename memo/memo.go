package memo

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrBadSize indicates a non-positive LRU store size.
var ErrBadSize = errors.New("memo: store size must be positive")

// Store is the backing map of a Cache: sub-problem key → stored result.
type Store[K comparable, V any] interface {
	// Get retrieves the stored result for key, if present.
	Get(key K) (V, bool)
	// Add stores the result for key, overwriting any previous entry.
	Add(key K, value V)
	// Len returns the number of stored entries.
	Len() int
}

// mapStore is the default unbounded Store: entries accumulate for the
// life of the cache and are never evicted.
type mapStore[K comparable, V any] map[K]V

func (m mapStore[K, V]) Get(key K) (V, bool) { v, ok := m[key]; return v, ok }
func (m mapStore[K, V]) Add(key K, value V)  { m[key] = value }
func (m mapStore[K, V]) Len() int            { return len(m) }

// lruStore bounds the cache with least-recently-used eviction.
type lruStore[K comparable, V any] struct {
	c *lru.Cache[K, V]
}

func (s *lruStore[K, V]) Get(key K) (V, bool) { return s.c.Get(key) }
func (s *lruStore[K, V]) Add(key K, value V)  { s.c.Add(key, value) }
func (s *lruStore[K, V]) Len() int            { return s.c.Len() }

// NewLRUStore creates a bounded Store holding at most size entries,
// evicting the least recently used. Eviction costs recomputation on a
// later miss, never correctness.
// Returns ErrBadSize for size ≤ 0.
func NewLRUStore[K comparable, V any](size int) (Store[K, V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &lruStore[K, V]{c: c}, nil
}

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithStore replaces the default unbounded store.
func WithStore[K comparable, V any](s Store[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		if s != nil {
			c.store = s
		}
	}
}

// Cache memoizes results of a deterministic computation keyed by K.
// The zero value is not usable; construct with New.
type Cache[K comparable, V any] struct {
	store Store[K, V]
}

// New creates a Cache backed by the default unbounded store, unless
// WithStore overrides it.
// Complexity: O(1)
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{store: mapStore[K, V]{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves the cached result for key, if present.
// Complexity: O(1) expected
func (c *Cache[K, V]) Get(key K) (V, bool) { return c.store.Get(key) }

// Add stores the result for key.
// Complexity: O(1) expected
func (c *Cache[K, V]) Add(key K, value V) { c.store.Add(key, value) }

// Len returns the number of cached sub-problems.
// Complexity: O(1)
func (c *Cache[K, V]) Len() int { return c.store.Len() }

// GetOrCompute returns the cached result for key; on a miss it runs
// compute, stores the result, and returns it. compute must be
// deterministic in key.
// Complexity: O(1) expected on a hit, plus one compute on a miss
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.store.Get(key); ok {
		return v
	}
	v := compute()
	c.store.Add(key, v)
	return v
}

// Memoize wraps the recursive function fn into its memoized form.
// fn receives the key to solve and a recurse callback; recursive
// sub-calls must go through recurse so they hit the shared cache.
// Each distinct key is computed at most once per returned function.
//
// Recursion depth is proportional to the longest sub-problem chain;
// for deep chains prefer an iterative bottom-up formulation.
func Memoize[K comparable, V any](fn func(key K, recurse func(K) V) V, opts ...Option[K, V]) func(K) V {
	cache := New[K, V](opts...)
	var recurse func(K) V
	recurse = func(key K) V {
		return cache.GetOrCompute(key, func() V { return fn(key, recurse) })
	}
	return recurse
}
