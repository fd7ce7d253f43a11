package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/uiforge/designaudit/pkg/advisory"
	"github.com/uiforge/designaudit/pkg/analyzer"
	"github.com/uiforge/designaudit/pkg/design"
	"github.com/uiforge/designaudit/pkg/store"
	"github.com/uiforge/designaudit/pkg/token"
	"github.com/uiforge/designaudit/pkg/util"
)

func newLogger() *slog.Logger {
	cfg := util.DefaultLoggerConfig()
	cfg.Level = util.LogLevel(flagLogLevel)
	if flagLogFormat == "text" {
		cfg.Format = util.FormatText
	}
	return util.NewLogger(cfg)
}

// styleTable is the sidecar format mapping host style and variable ids to
// their published names.
type styleTable struct {
	Styles    map[string]string `json:"styles"`
	Variables map[string]string `json:"variables"`
}

func loadResolver(path string) (token.StyleResolver, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style table %q: %w", path, err)
	}
	var table styleTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse style table %q: %w", path, err)
	}
	return token.MapResolver{Styles: table.Styles, Variables: table.Variables}, nil
}

func newSession(ctx context.Context, logger *slog.Logger) (*analyzer.Session, error) {
	resolver, err := loadResolver(flagStyles)
	if err != nil {
		return nil, err
	}

	opts := []analyzer.SessionOption{
		analyzer.WithLogger(logger),
		analyzer.WithStore(store.NewMemoryStore()),
	}
	if resolver != nil {
		opts = append(opts, analyzer.WithResolver(resolver))
	}

	if !flagOffline {
		if os.Getenv("GEMINI_API_KEY") == "" {
			logger.Warn("GEMINI_API_KEY not set, running offline")
		} else {
			client, err := advisory.NewGeminiClient(ctx, flagModel, 0)
			if err != nil {
				return nil, err
			}
			opts = append(opts, analyzer.WithAdvisory(client))
		}
	}

	cfg := analyzer.DefaultConfig()
	cfg.MaxDepth = flagMaxDepth
	cfg.CacheEntries = flagCacheSize
	return analyzer.NewSession(cfg, opts...)
}

// loadTarget loads a document and returns the requested subtree root, or the
// document root when no element id was given.
func loadTarget(path string, logger *slog.Logger) (*design.Document, *design.Element, error) {
	doc, err := design.LoadDocument(path, logger)
	if err != nil {
		return nil, nil, err
	}
	if flagElementID == "" {
		return doc, doc.Root, nil
	}
	w := design.Walker{MaxDepth: 1 << 16}
	el := w.FindByID(doc.Root, flagElementID)
	if el == nil {
		return nil, nil, fmt.Errorf("element %q not found in %s", flagElementID, path)
	}
	return doc, el, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
