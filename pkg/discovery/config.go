package discovery

import "time"

type Config struct {
	// CacheCapacity bounds the result cache entry count.
	CacheCapacity int `env:"DISCOVERY_CACHE_CAPACITY,default=1000" validate:"min=1"`
	// CacheTTL applies to genuine provider results.
	CacheTTL time.Duration `env:"DISCOVERY_CACHE_TTL,default=10m"`
	// FallbackCacheTTL applies to fallback results, kept short so a
	// recovering provider is retried soon.
	FallbackCacheTTL time.Duration `env:"DISCOVERY_FALLBACK_CACHE_TTL,default=2m"`
	// Timeout is the outer deadline for one discovery call. Past it the
	// engine degrades to the fallback set.
	Timeout time.Duration `env:"DISCOVERY_TIMEOUT,default=12s"`
	// DetailConcurrency bounds the per-place detail enrichment fan-out.
	DetailConcurrency int `env:"DISCOVERY_DETAIL_CONCURRENCY,default=4" validate:"min=1"`
	// EnrichDetails toggles the optional per-place detail calls.
	EnrichDetails bool `env:"DISCOVERY_ENRICH_DETAILS,default=true"`
}
