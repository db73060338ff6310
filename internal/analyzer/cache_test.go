package analyzer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCache_SetGet(t *testing.T) {
	cache := NewReportCache(4, time.Minute)

	report := &ThreatReport{URL: "https://example.com", ThreatLevel: LevelSafe}
	cache.Set("https://example.com", report)

	got, ok := cache.Get("https://example.com")
	require.True(t, ok)
	assert.Same(t, report, got)

	_, ok = cache.Get("https://other.example.com")
	assert.False(t, ok)
}

func TestReportCache_Expiry(t *testing.T) {
	cache := NewReportCache(4, 10*time.Millisecond)

	cache.Set("key", &ThreatReport{URL: "key"})
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok, "entry should have expired")
}

func TestReportCache_SizeBound(t *testing.T) {
	cache := NewReportCache(3, time.Minute)

	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("url-%d", i)
		cache.Set(key, &ThreatReport{URL: key})
	}

	stats := cache.Stats()
	assert.LessOrEqual(t, stats.Size, 3)
	assert.Equal(t, 3, stats.MaxSize)
}

func TestReportCache_Stats(t *testing.T) {
	cache := NewReportCache(4, time.Minute)

	cache.Set("a", &ThreatReport{URL: "a"})
	cache.Get("a")
	cache.Get("missing")

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestRequestFingerprint(t *testing.T) {
	// URL-only requests key on the URL itself
	assert.Equal(t, "https://a.com", requestFingerprint("https://a.com", ""))

	// Content changes the key, and different content yields different keys
	withContent := requestFingerprint("https://a.com", "hello")
	otherContent := requestFingerprint("https://a.com", "world")
	assert.NotEqual(t, "https://a.com", withContent)
	assert.NotEqual(t, withContent, otherContent)
}
