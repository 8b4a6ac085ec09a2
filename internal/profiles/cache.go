package profiles

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"
)

// carbonCache is an opt-in in-memory cache for carbon intensity responses.
// The forecast updates every half hour, so short-lived reuse is safe and
// spares the public API during repeated runs. Disabled unless
// ENABLE_CARBON_CACHE=true.
type carbonCache struct {
	mu    sync.RWMutex
	store map[string]carbonCacheEntry
	ttl   time.Duration
}

type carbonCacheEntry struct {
	periods   []IntensityPeriod
	expiresAt time.Time
}

var (
	globalCarbonCache *carbonCache
	carbonCacheOnce   sync.Once
)

func getCarbonCache() *carbonCache {
	if os.Getenv("ENABLE_CARBON_CACHE") != "true" {
		return nil
	}

	carbonCacheOnce.Do(func() {
		ttl := 30 * time.Minute
		if ttlStr := os.Getenv("CARBON_CACHE_TTL"); ttlStr != "" {
			if parsed, err := time.ParseDuration(ttlStr); err == nil {
				ttl = parsed
			}
		}
		globalCarbonCache = &carbonCache{
			store: make(map[string]carbonCacheEntry),
			ttl:   ttl,
		}
	})

	return globalCarbonCache
}

func (c *carbonCache) get(key string) ([]IntensityPeriod, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.periods, true
}

func (c *carbonCache) set(key string, periods []IntensityPeriod) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = carbonCacheEntry{
		periods:   periods,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func carbonCacheKey(from, to time.Time) string {
	keyStr := fmt.Sprintf("%s:%s", from.UTC().Format(carbonTimeFormat), to.UTC().Format(carbonTimeFormat))
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
