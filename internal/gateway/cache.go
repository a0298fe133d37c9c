package gateway

import (
	"sync"
	"time"
)

// Time-to-live per data class. Prices move intraday; fundamentals,
// income statements and index membership change on filing or rebalance
// timescales.
const (
	TTLPrices          = time.Hour
	TTLFundamentals    = 24 * time.Hour
	TTLIncomeStatement = 24 * time.Hour
	TTLMembership      = 24 * time.Hour
)

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// ttlCache is an in-memory key-value store with per-entry expiry. It is
// owned by a Gateway instance and never shared across processes.
type ttlCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func newTTLCache() *ttlCache {
	return &ttlCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *ttlCache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *ttlCache) put(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(ttl)}
}

// sweep removes expired entries and returns how many were dropped.
func (c *ttlCache) sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

func (c *ttlCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
