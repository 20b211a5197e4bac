package server

import (
	"context"
	"sync"
	"time"

	"github.com/abelbrown/pressdeck/internal/feeds"
)

// RefreshFunc produces a fresh aggregation result.
type RefreshFunc func(ctx context.Context) feeds.Result

// Cache holds the latest aggregation result for a freshness window so
// every page view does not trigger a full refetch of all sources.
type Cache struct {
	mu        sync.Mutex
	ttl       time.Duration
	refresh   RefreshFunc
	result    feeds.Result
	fetchedAt time.Time
}

// NewCache creates a Cache that calls refresh when the held result is
// older than ttl.
func NewCache(ttl time.Duration, refresh RefreshFunc) *Cache {
	return &Cache{ttl: ttl, refresh: refresh}
}

// Get returns the cached result and its fetch time, refreshing first
// when forced, stale, or empty. The lock is held across the refresh so
// concurrent requests share one fetch instead of racing their own.
func (c *Cache) Get(ctx context.Context, force bool) (feeds.Result, time.Time) {
	now := time.Now().UTC()

	c.mu.Lock()
	defer c.mu.Unlock()

	stale := now.Sub(c.fetchedAt) > c.ttl
	if force || stale || len(c.result.Posts) == 0 {
		c.result = c.refresh(ctx)
		c.fetchedAt = now
	}
	return c.result, c.fetchedAt
}
