// Package infra provides supporting infrastructure for the registry
// services, currently an expiring in-memory cache.
package infra

import (
	"sync"
	"time"
)

// DefaultMaxCacheEntries caps the cache to prevent unbounded memory growth.
const DefaultMaxCacheEntries = 128

type cacheEntry struct {
	data       any
	expiresAt  time.Time
	accessedAt time.Time
}

// Cache is a small LRU cache with per-entry TTL. It is safe for concurrent
// use. Entries are evicted lazily on access and when the entry limit is
// exceeded on insert.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*cacheEntry
	maxEntries int
}

// NewCache creates a cache holding at most maxEntries values.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	return &Cache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: maxEntries,
	}
}

// Get retrieves a cached value if it exists and has not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	now := time.Now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	e.accessedAt = now
	return e.data, true
}

// Set stores a value with the given TTL, evicting the least recently used
// entry when the cache is full.
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = &cacheEntry{
		data:       data,
		expiresAt:  now.Add(ttl),
		accessedAt: now,
	}
}

// Delete removes a key from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Size returns the current number of entries, expired ones included.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.accessedAt.Before(oldest) {
			oldestKey, oldest = k, e.accessedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
