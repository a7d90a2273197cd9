package kindaxml

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ResultCacheConfig configures ResultCache's behavior, grounded on the
// teacher's ResultCacheConfig (prompty.cache.results.go), trimmed to
// the fields a pure-function cache over (text, Config) actually needs.
type ResultCacheConfig struct {
	// TTL is how long a cached result stays valid. Default: 5 minutes.
	TTL time.Duration

	// MaxEntries bounds the cache size; the oldest entry is evicted
	// once this is reached. Default: 1000.
	MaxEntries int

	// Logger receives cache lifecycle events (hit, miss). Nil
	// disables logging. Parse itself is never logged (spec §5); this is
	// strictly a concern of the stateful wrapper.
	Logger *zap.Logger
}

// DefaultResultCacheConfig returns sensible defaults for result caching.
func DefaultResultCacheConfig() ResultCacheConfig {
	return ResultCacheConfig{
		TTL:        5 * time.Minute,
		MaxEntries: 1000,
	}
}

type resultCacheEntry struct {
	result    *ParseResult
	expiresAt time.Time
}

// ResultCacheStats tracks cache performance metrics.
type ResultCacheStats struct {
	Hits       int64
	Misses     int64
	Evictions  int64
	EntryCount int
}

// ResultCache caches ParseResult values keyed by the input text and the
// resolved Config that produced them, so repeated calls against
// identical (text, Config) pairs skip re-running the recovery engine.
// Grounded on the teacher's ResultCache (prompty.cache.results.go),
// generalized from a template-execution cache to key on a content hash
// of text plus Config rather than a template name.
type ResultCache struct {
	mu        sync.RWMutex
	entries   map[string]*resultCacheEntry
	evictList []string
	config    ResultCacheConfig
	stats     ResultCacheStats
}

// NewResultCache creates a cache with the given configuration.
func NewResultCache(config ResultCacheConfig) *ResultCache {
	if config.TTL == 0 {
		config.TTL = 5 * time.Minute
	}
	if config.MaxEntries == 0 {
		config.MaxEntries = 1000
	}
	return &ResultCache{
		entries:   make(map[string]*resultCacheEntry),
		evictList: make([]string, 0, config.MaxEntries),
		config:    config,
	}
}

func cacheKey(text string, cfg *Config) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(cfg.canonicalKey()))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for (text, cfg), if present and not
// expired.
func (c *ResultCache) Get(text string, cfg *Config) (*ParseResult, bool) {
	key := cacheKey(text, cfg)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		c.logMiss(key)
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		c.stats.Misses++
		c.stats.EntryCount = len(c.entries)
		c.logMiss(key)
		return nil, false
	}
	c.stats.Hits++
	if c.config.Logger != nil {
		c.config.Logger.Debug("kindaxml cache hit", zap.String("key", key))
	}
	return entry.result, true
}

// Set stores a result for (text, cfg), evicting the oldest entry if the
// cache is already at MaxEntries.
func (c *ResultCache) Set(text string, cfg *Config, result *ParseResult) {
	key := cacheKey(text, cfg)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.config.MaxEntries {
		c.evictOldest()
	}
	c.entries[key] = &resultCacheEntry{
		result:    result,
		expiresAt: time.Now().Add(c.config.TTL),
	}
	c.evictList = append(c.evictList, key)
	c.stats.EntryCount = len(c.entries)
}

// GetOrParse returns the cached result for (text, cfg) if present,
// otherwise runs ParseWithConfig and caches the outcome.
func (c *ResultCache) GetOrParse(text string, cfg *Config) *ParseResult {
	if result, ok := c.Get(text, cfg); ok {
		return result
	}
	result := ParseWithConfig(text, cfg)
	c.Set(text, cfg, result)
	return result
}

// Clear removes every entry from the cache.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*resultCacheEntry)
	c.evictList = c.evictList[:0]
	c.stats.EntryCount = 0
}

// Cleanup removes expired entries and returns how many were removed.
func (c *ResultCache) Cleanup() int {
	now := time.Now()
	removed := 0

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	c.stats.EntryCount = len(c.entries)
	return removed
}

// Stats returns a snapshot of the cache's performance counters.
func (c *ResultCache) Stats() ResultCacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate, 0 when no lookups have occurred.
func (c *ResultCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := c.stats.Hits + c.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(c.stats.Hits) / float64(total)
}

func (c *ResultCache) evictOldest() {
	// Keys removed by expiry or Cleanup stay in evictList; skip them so
	// that one live entry is always evicted when there is one.
	for len(c.evictList) > 0 {
		oldest := c.evictList[0]
		c.evictList = c.evictList[1:]
		if _, ok := c.entries[oldest]; ok {
			delete(c.entries, oldest)
			c.stats.Evictions++
			return
		}
	}
}

func (c *ResultCache) logMiss(key string) {
	if c.config.Logger != nil {
		c.config.Logger.Debug("kindaxml cache miss", zap.String("key", key))
	}
}
