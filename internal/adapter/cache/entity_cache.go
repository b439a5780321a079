// Package cache bounds the memory and staleness of remotely-sourced
// entities. Entries expire after a fixed TTL and the cache holds a hard
// maximum number of entries, evicting least-recently-used under pressure.
package cache

import (
	"sync/atomic"
	"time"

	"github.com/HenriqueMichelini/craftalism-economy-sub001/internal/core/ports"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// EntityCache implements ports.EntityCache[T]. Entries are stored by value,
// so later mutation of the caller's copy cannot corrupt the cached one.
type EntityCache[T any] struct {
	lru *expirable.LRU[uuid.UUID, T]

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// New creates a cache bounded to maxEntries resident entries with the given
// TTL. Both bounds are fixed for the cache's lifetime.
func New[T any](maxEntries int, ttl time.Duration) *EntityCache[T] {
	c := &EntityCache[T]{}
	c.lru = expirable.NewLRU[uuid.UUID, T](maxEntries, func(uuid.UUID, T) {
		c.evictions.Add(1)
	}, ttl)
	return c
}

// Find returns the cached entity, if present and fresh. It never triggers a
// remote fetch; populating the cache is the caller's responsibility.
func (c *EntityCache[T]) Find(id uuid.UUID) (T, bool) {
	v, ok := c.lru.Get(id)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Save inserts or replaces the entry for the entity's id.
func (c *EntityCache[T]) Save(id uuid.UUID, entity T) {
	c.lru.Add(id, entity)
}

// Delete explicitly invalidates an entry (e.g. on player logout).
func (c *EntityCache[T]) Delete(id uuid.UUID) bool {
	removed := c.lru.Remove(id)
	if removed {
		// Remove reports through the eviction callback too; explicit
		// invalidation is not an eviction.
		c.evictions.Add(-1)
	}
	return removed
}

func (c *EntityCache[T]) Len() int {
	return c.lru.Len()
}

// Stats returns the counters for operational monitoring.
func (c *EntityCache[T]) Stats() ports.CacheStats {
	return ports.CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.lru.Len(),
	}
}
