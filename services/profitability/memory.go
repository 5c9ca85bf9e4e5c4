package profitability

import (
	"sync/atomic"
	"time"

	"minerprofit-backend/lib/chrono"
	"minerprofit-backend/lib/scrapers/asicminervalue"
)

// Tier names double as the `source` tag in responses.
type Tier string

const (
	TierMemory   Tier = "memory-cache"
	TierDatabase Tier = "database"
	TierLive     Tier = "fresh"
	TierFallback Tier = "fallback"
)

// CacheEntry is an immutable list of miners and where it came from.
type CacheEntry struct {
	Miners    []asicminervalue.MinerRecord
	FetchedAt time.Time
	Source    Tier
}

// Cache is the process-scoped memory tier.
type Cache interface {
	// Get returns the current entry or ErrCacheMiss when it is absent or
	// older than the TTL.
	Get() (CacheEntry, error)
	Set(entry CacheEntry)
	// Snapshot returns the current entry regardless of age.
	Snapshot() (CacheEntry, bool)
}

// MemoryCache holds a single entry that is replaced wholesale.
type MemoryCache struct {
	entry atomic.Pointer[CacheEntry]
	clock chrono.Clock
	ttl   time.Duration
}

func NewMemoryCache(clock chrono.Clock, ttl time.Duration) *MemoryCache {
	return &MemoryCache{clock: clock, ttl: ttl}
}

func (c *MemoryCache) Get() (CacheEntry, error) {
	entry := c.entry.Load()
	if entry == nil {
		return CacheEntry{}, ErrCacheMiss
	}
	if c.clock.Now().Sub(entry.FetchedAt) >= c.ttl {
		return CacheEntry{}, ErrCacheMiss
	}
	return *entry, nil
}

func (c *MemoryCache) Set(entry CacheEntry) {
	c.entry.Store(&entry)
}

func (c *MemoryCache) Snapshot() (CacheEntry, bool) {
	entry := c.entry.Load()
	if entry == nil {
		return CacheEntry{}, false
	}
	return *entry, true
}
