// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildmatch

package wildmatch

import (
	"container/list"
	"sync"

	"go.uber.org/zap"
)

// defaultCache backs the package-level convenience functions.
var defaultCache = NewPatternCache(DefaultCacheSize)

// DefaultCache returns the process-wide pattern cache used by package-level functions.
func DefaultCache() *PatternCache {
	return defaultCache
}

// PatternCache memoizes compiled patterns keyed by pattern text and options.
//
// Capacity is bounded; when full, the oldest inserted entry is evicted first
// regardless of how recently it was used. It is safe for concurrent use.
type PatternCache struct {
	// items maps cache key to its element in order.
	items map[string]*list.Element
	// order keeps keys in insertion order, oldest at front.
	order *list.List
	// logger receives debug eviction records.
	logger *zap.Logger

	// mu guards every field below and above.
	mu        sync.Mutex
	maxSize   int
	hits      uint64
	misses    uint64
	evictions uint64
}

// cacheEntry is one compiled pattern stored under its key.
type cacheEntry struct {
	compiled *CompiledPattern
	key      string
}

// NewPatternCache creates an empty cache holding at most maxSize patterns.
// Non-positive maxSize selects DefaultCacheSize.
func NewPatternCache(maxSize int) *PatternCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}

	return &PatternCache{
		items:   make(map[string]*list.Element),
		order:   list.New(),
		logger:  zap.NewNop(),
		maxSize: maxSize,
	}
}

// SetLogger replaces the cache logger; nil restores the no-op logger.
func (c *PatternCache) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c.mu.Lock()
	c.logger = logger
	c.mu.Unlock()
}

// Compile returns the compiled form of pattern under opts, compiling on first use.
//
// Repeated calls with equal pattern and options return the same pointer.
func (c *PatternCache) Compile(pattern string, opts Options) (*CompiledPattern, error) {
	return c.compile(pattern, opts, opts.Fingerprint())
}

// compile is Compile with a precomputed options fingerprint.
func (c *PatternCache) compile(pattern string, opts Options, fingerprint string) (*CompiledPattern, error) {
	key := cacheKey(pattern, fingerprint)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.hits++
		return elem.Value.(*cacheEntry).compiled, nil //nolint:errcheck // list only contains *cacheEntry
	}

	c.misses++

	compiled, err := compilePattern(pattern, opts)
	if err != nil {
		return nil, err
	}

	for c.order.Len() >= c.maxSize {
		c.evictOldest()
	}

	c.items[key] = c.order.PushBack(&cacheEntry{key: key, compiled: compiled})
	return compiled, nil
}

// Clear removes all entries and resets counters.
func (c *PatternCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Stats reports current size, capacity and counters.
func (c *PatternCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Size:      c.order.Len(),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// evictOldest removes the first inserted entry.
// Must be called with lock held.
func (c *PatternCache) evictOldest() {
	elem := c.order.Front()
	if elem == nil {
		return
	}

	entry := c.order.Remove(elem).(*cacheEntry) //nolint:errcheck // list only contains *cacheEntry
	delete(c.items, entry.key)
	c.evictions++

	c.logger.Debug("evicted compiled pattern",
		zap.String("pattern", entry.compiled.Pattern),
		zap.Int("max_size", c.maxSize),
	)
}

// cacheKey combines pattern text with the options fingerprint.
func cacheKey(pattern, fingerprint string) string {
	return pattern + "\x00" + fingerprint
}
