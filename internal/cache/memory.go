package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/murl-digital/throw-cruncher/internal/parse"
)

// MemoryCache implements in-memory parse memoization
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a memoized outcome for the raw cell text
func (c *MemoryCache) Get(raw string) (parse.Outcome, bool) {
	if val, found := c.cache.Get(Key(raw)); found {
		return val.(parse.Outcome), true
	}
	return parse.Outcome{}, false
}

// Set memoizes the outcome for the raw cell text
func (c *MemoryCache) Set(raw string, out parse.Outcome) {
	c.cache.Set(Key(raw), out, gocache.DefaultExpiration)
}
