package memory

import (
	"context"
	"sync"
	"time"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

// Ensure CompletionCache implements the interface.
var _ driven.CompletionCache = (*CompletionCache)(nil)

type cacheEntry struct {
	value   string
	expires time.Time
}

// CompletionCache is an in-process driven.CompletionCache used when no Redis
// server is configured.
type CompletionCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCompletionCache creates an empty cache.
func NewCompletionCache() *CompletionCache {
	return &CompletionCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns a live entry. Expired entries are evicted on read.
func (c *CompletionCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !entry.expires.IsZero() && !c.now().Before(entry.expires) {
		delete(c.entries, key)
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set stores value under key. A non-positive ttl never expires.
func (c *CompletionCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheEntry{value: value}
	if ttl > 0 {
		entry.expires = c.now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}
