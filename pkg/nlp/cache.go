package nlp

import (
	"context"
	"sync"
	"time"

	"github.com/galaapp/gala/pkg/lib"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
)

type completionModel interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

type cacheEntry struct {
	value      string
	expiration time.Time
}

// CompletionCache memoizes model completions by prompt hash.
type CompletionCache struct {
	logger  *zerolog.Logger
	entries map[string]cacheEntry
	mu      sync.RWMutex
	ttl     time.Duration
}

func NewCompletionCache(ttl time.Duration, logger *zerolog.Logger) *CompletionCache {
	return &CompletionCache{
		logger:  logger,
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *CompletionCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return "", false
	}

	if time.Now().After(entry.expiration) {
		return "", false
	}

	c.logger.Trace().
		Str("key", key).
		Msg("completion cache hit")

	return entry.value, true
}

func (c *CompletionCache) Set(key string, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:      value,
		expiration: time.Now().Add(c.ttl),
	}
}

// CachedModel wraps a completion model with the cache.
type CachedModel struct {
	model completionModel
	cache *CompletionCache
}

func NewCachedModel(model completionModel, cache *CompletionCache) *CachedModel {
	return &CachedModel{model: model, cache: cache}
}

func (cm *CachedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	key := lib.HashParams("completion", prompt)

	if response, found := cm.cache.Get(key); found {
		return response, nil
	}

	response, err := cm.model.Call(ctx, prompt, options...)
	if err != nil {
		return "", err
	}

	cm.cache.Set(key, response)
	return response, nil
}
