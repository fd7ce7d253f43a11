package fingerprint

import (
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/uiforge/designaudit/pkg/store"
)

// CachedAnalysis is one stored reconciled result. Entries are immutable once
// written.
type CachedAnalysis struct {
	Fingerprint string          `json:"fingerprint"`
	Result      json.RawMessage `json:"result"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CacheConfig controls cache sizing and optional persistence.
type CacheConfig struct {
	// MaxEntries bounds the in-memory LRU. Zero means 512.
	MaxEntries int
	// Store, when non-nil, receives a write-through copy of every entry
	// under "analysis/<fingerprint>".
	Store store.KV
}

// DefaultCacheConfig returns sizing suitable for a single document session.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{MaxEntries: 512}
}

// Cache is the process-wide analysis cache keyed by fingerprint. Reads are
// always safe concurrently; writes are idempotent, so a redundant concurrent
// recomputation landing second is a no-op rather than a conflict.
type Cache struct {
	entries *lru.Cache[string, CachedAnalysis]
	kv      store.KV
}

// NewCache creates a Cache from config.
func NewCache(cfg CacheConfig) (*Cache, error) {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 512
	}
	entries, err := lru.New[string, CachedAnalysis](cfg.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}
	return &Cache{entries: entries, kv: cfg.Store}, nil
}

// Get returns the cached analysis for a fingerprint. A miss is expected
// control flow, reported via the bool.
func (c *Cache) Get(fp string) (CachedAnalysis, bool) {
	return c.entries.Get(fp)
}

// Put stores an analysis if the fingerprint is not already present. The
// first write wins; later writes with the same fingerprint carry the same
// content by construction, so dropping them is safe.
func (c *Cache) Put(fp string, result json.RawMessage) CachedAnalysis {
	if existing, ok := c.entries.Get(fp); ok {
		return existing
	}
	entry := CachedAnalysis{
		Fingerprint: fp,
		Result:      result,
		CreatedAt:   time.Now().UTC(),
	}
	c.entries.Add(fp, entry)

	if c.kv != nil {
		if data, err := json.Marshal(entry); err == nil {
			_ = c.kv.Set("analysis/"+fp, data)
		}
	}
	return entry
}

// Len returns the number of resident entries.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every entry; used when the host document is replaced.
func (c *Cache) Purge() { c.entries.Purge() }
