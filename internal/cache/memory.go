package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory implements Store with an in-process TTL cache
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory store with the given default TTL
func NewMemory(defaultTTL time.Duration, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *Memory) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

// Set stores a value with the given TTL (0 means the default)
func (c *Memory) Set(key string, value interface{}, ttl time.Duration) {
	c.cache.Set(key, value, ttl)
}

// Delete removes a value from the cache
func (c *Memory) Delete(key string) {
	c.cache.Delete(key)
}

// Flush removes all values from the cache
func (c *Memory) Flush() {
	c.cache.Flush()
}
