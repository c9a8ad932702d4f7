package discovery

import (
	"strconv"
	"sync"
	"time"

	"github.com/galaapp/gala/pkg/discovery/types"
	"github.com/galaapp/gala/pkg/lib"
	"github.com/rs/zerolog"
)

type cacheEntry struct {
	result    types.DiscoveryResult
	createdAt time.Time
	ttl       time.Duration
}

// ResultCache is a bounded, fingerprint-keyed store of prior discovery
// results. Entries are immutable once written; reads hand out deep
// copies so callers can never mutate cached state.
type ResultCache struct {
	logger   *zerolog.Logger
	entries  map[string]cacheEntry
	mu       sync.RWMutex
	capacity int

	hits   uint64
	misses uint64

	now func() time.Time
}

// CacheStats are process-lifetime counters.
type CacheStats struct {
	Hits          uint64  `json:"hits"`
	Misses        uint64  `json:"misses"`
	TotalRequests uint64  `json:"totalRequests"`
	HitRate       float64 `json:"hitRate"`
	Size          int     `json:"size"`
}

func NewResultCache(capacity int, logger *zerolog.Logger) *ResultCache {
	return &ResultCache{
		logger:   logger,
		entries:  make(map[string]cacheEntry),
		capacity: capacity,
		now:      time.Now,
	}
}

// Get returns a copy of the cached result for the fingerprint, if
// present and unexpired. An expired entry is evicted on read and
// counted as a miss.
func (c *ResultCache) Get(fingerprint string) (types.DiscoveryResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[fingerprint]
	if !exists {
		c.misses++
		return types.DiscoveryResult{}, false
	}

	if c.now().Sub(entry.createdAt) > entry.ttl {
		delete(c.entries, fingerprint)
		c.misses++
		return types.DiscoveryResult{}, false
	}

	c.hits++
	c.logger.Trace().
		Str("fingerprint", fingerprint).
		Msg("result cache hit")

	return entry.result.Clone(), true
}

// Set stores a copy of the result under the fingerprint. When the cache
// is at capacity, the entry with the oldest createdAt is evicted first.
func (c *ResultCache) Set(fingerprint string, result types.DiscoveryResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[fingerprint]; !exists && len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}

	c.entries[fingerprint] = cacheEntry{
		result:    result.Clone(),
		createdAt: c.now(),
		ttl:       ttl,
	}
}

func (c *ResultCache) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)

	for key, entry := range c.entries {
		if !found || entry.createdAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.createdAt
			found = true
		}
	}

	if found {
		delete(c.entries, oldestKey)
	}
}

// Stats returns cumulative counters for observability.
func (c *ResultCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}

	return CacheStats{
		Hits:          c.hits,
		Misses:        c.misses,
		TotalRequests: total,
		HitRate:       rate,
		Size:          len(c.entries),
	}
}

// Fingerprint derives a deterministic cache key from the filterable
// FilterSpec fields. Location enters only as a coarse grid bucket, so
// nearby callers with identical filters share entries while far-apart
// callers do not.
func Fingerprint(spec types.FilterSpec) string {
	spec = spec.Normalized()

	return lib.HashParams(
		strconv.FormatFloat(spec.Mood, 'f', 2, 64),
		string(spec.Category),
		string(spec.Budget),
		string(spec.TimeOfDay),
		string(spec.SocialContext),
		strconv.FormatFloat(spec.DistanceRange, 'f', 2, 64),
		strconv.Itoa(spec.MinResults),
		lib.GeoBucket(spec.UserLocation.Lat, spec.UserLocation.Lng),
	)
}
