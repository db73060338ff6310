package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// CacheStats is a snapshot of cache effectiveness counters
type CacheStats struct {
	Size    int   `json:"size"`
	MaxSize int   `json:"max_size"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

type cacheEntry struct {
	report    *ThreatReport
	expiresAt time.Time
}

// ReportCache is a bounded TTL cache for threat reports. It is constructed
// explicitly and injected into the Aggregator rather than held as hidden
// global state, so its size bound and eviction are visible and testable.
//
// Reports are immutable once produced, so cached values are shared by
// reference across callers.
type ReportCache struct {
	mu      sync.RWMutex
	items   map[string]cacheEntry
	maxSize int
	ttl     time.Duration
	hits    int64
	misses  int64
}

// NewReportCache creates a ReportCache holding at most maxSize entries,
// each valid for ttl
func NewReportCache(maxSize int, ttl time.Duration) *ReportCache {
	return &ReportCache{
		items:   make(map[string]cacheEntry),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Get returns the cached report for a key, if present and not expired
func (c *ReportCache) Get(key string) (*ThreatReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		delete(c.items, key)
		c.misses++
		return nil, false
	}

	c.hits++
	return entry.report, true
}

// Set stores a report under a key, evicting the entry closest to expiry
// when the cache is full
func (c *ReportCache) Set(key string, report *ThreatReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxSize {
		c.evictOldest()
	}

	c.items[key] = cacheEntry{
		report:    report,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Stats returns a snapshot of the cache counters
func (c *ReportCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{
		Size:    len(c.items),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// evictOldest removes the entry with the earliest expiry.
// Caller must hold the write lock.
func (c *ReportCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	first := true

	for key, entry := range c.items {
		if first || entry.expiresAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.expiresAt
			first = false
		}
	}

	if !first {
		delete(c.items, oldestKey)
	}
}

// requestFingerprint derives a cache key from a request. Content is hashed
// so that large bodies never end up as map keys.
func requestFingerprint(rawURL, content string) string {
	if content == "" {
		return rawURL
	}
	sum := sha256.Sum256([]byte(content))
	return rawURL + "#" + hex.EncodeToString(sum[:8])
}
