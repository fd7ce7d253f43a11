// Package analyzer wires the analysis pipeline: traversal, token extraction,
// naming analysis, fingerprinting, the advisory round trip, and
// reconciliation. All state hangs off an explicit Session; there are no
// package-level globals.
package analyzer

import (
	"fmt"
	"log/slog"

	"github.com/uiforge/designaudit/pkg/advisory"
	"github.com/uiforge/designaudit/pkg/fingerprint"
	"github.com/uiforge/designaudit/pkg/store"
	"github.com/uiforge/designaudit/pkg/token"
)

// Config holds the per-session analysis settings.
type Config struct {
	// MaxDepth bounds every traversal in the session. Zero means the
	// design package default.
	MaxDepth int
	// CacheEntries sizes the analysis cache. Zero means the cache default.
	CacheEntries int
	// LookupFanout bounds concurrent style lookups per node.
	LookupFanout int
}

// DefaultConfig returns settings suitable for interactive use.
func DefaultConfig() Config {
	return Config{}
}

// Session carries everything one analysis context needs. Advisory may be
// nil, in which case analyses are ground-truth-only ("offline").
type Session struct {
	logger   *slog.Logger
	cache    *fingerprint.Cache
	kv       store.KV
	advisory advisory.Client
	resolver token.StyleResolver
	cfg      Config
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithAdvisory sets the advisory client. Without one, analyses are
// deterministic ground truth only.
func WithAdvisory(c advisory.Client) SessionOption {
	return func(s *Session) { s.advisory = c }
}

// WithResolver sets the style/variable resolver used during extraction.
func WithResolver(r token.StyleResolver) SessionOption {
	return func(s *Session) { s.resolver = r }
}

// WithStore sets the persistence boundary for cache write-through.
func WithStore(kv store.KV) SessionOption {
	return func(s *Session) { s.kv = kv }
}

// NewSession creates a Session with its own analysis cache.
func NewSession(cfg Config, opts ...SessionOption) (*Session, error) {
	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	cacheCfg := fingerprint.DefaultCacheConfig()
	if cfg.CacheEntries > 0 {
		cacheCfg.MaxEntries = cfg.CacheEntries
	}
	cacheCfg.Store = s.kv

	cache, err := fingerprint.NewCache(cacheCfg)
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	s.cache = cache
	return s, nil
}

// Cache exposes the session cache for inspection.
func (s *Session) Cache() *fingerprint.Cache { return s.cache }

// Logger exposes the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }
