// Package watcher re-analyzes exported design documents when they change on
// disk. Rapid successive writes to the same file are debounced so an export
// in progress triggers one analysis, not dozens.
package watcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// ChangeHandler is invoked once per settled document change. Remove reports
// whether the document was deleted or renamed away.
type ChangeHandler func(path string, removed bool)

// Options configures a DocumentWatcher.
type Options struct {
	// DebounceMs is the quiet period before a changed file is reported.
	// Zero means 200ms.
	DebounceMs int
	// Includes are doublestar patterns (relative to the watched root) a
	// file must match to be reported. Empty means "**/*.json".
	Includes []string
	// Excludes are doublestar patterns for paths to ignore entirely.
	Excludes []string
}

// DefaultOptions returns options suitable for watching an export directory.
func DefaultOptions() Options {
	return Options{
		DebounceMs: 200,
		Includes:   []string{"**/*.json"},
	}
}

// DocumentWatcher watches a directory tree of exported documents.
type DocumentWatcher struct {
	watcher *fsnotify.Watcher
	handler ChangeHandler
	logger  *slog.Logger
	options Options
	root    string

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewDocumentWatcher creates a watcher that reports settled changes to
// handler.
func NewDocumentWatcher(handler ChangeHandler, options Options, logger *slog.Logger) (*DocumentWatcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("watcher: handler required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if options.DebounceMs <= 0 {
		options.DebounceMs = 200
	}
	if len(options.Includes) == 0 {
		options.Includes = []string{"**/*.json"}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	return &DocumentWatcher{
		watcher:        fsw,
		handler:        handler,
		logger:         logger,
		options:        options,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start begins watching rootPath and its subdirectories.
func (dw *DocumentWatcher) Start(rootPath string) error {
	dw.mu.Lock()
	if dw.stopped {
		dw.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	dw.mu.Unlock()

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("watcher: resolve root: %w", err)
	}
	dw.root = absRoot

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if dw.excluded(path) {
			return filepath.SkipDir
		}
		if err := dw.watcher.Add(path); err != nil {
			dw.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watcher: setup watches: %w", err)
	}

	dw.logger.Info("document watcher started", "root", absRoot)
	go dw.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (dw *DocumentWatcher) Stop() error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.stopped {
		return nil
	}
	dw.stopped = true
	close(dw.stopChan)

	dw.debounceMu.Lock()
	for _, timer := range dw.debounceTimers {
		timer.Stop()
	}
	dw.debounceTimers = make(map[string]*time.Timer)
	dw.debounceMu.Unlock()

	err := dw.watcher.Close()
	dw.logger.Info("document watcher stopped")
	return err
}

// Pending returns the number of changes waiting out their debounce window.
func (dw *DocumentWatcher) Pending() int {
	dw.debounceMu.Lock()
	defer dw.debounceMu.Unlock()
	return len(dw.debounceTimers)
}

func (dw *DocumentWatcher) eventLoop() {
	for {
		select {
		case <-dw.stopChan:
			return
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			dw.handleEvent(event)
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			dw.logger.Error("watch error", "error", err)
		}
	}
}

func (dw *DocumentWatcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// New directories need their own watch so nested exports are seen.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !dw.excluded(path) {
				if err := dw.watcher.Add(path); err != nil {
					dw.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
			}
			return
		}
	}

	if !dw.matches(path) {
		return
	}
	dw.logger.Debug("document event", "op", event.Op.String(), "file", path)

	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		dw.debounce(path, false)
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		dw.debounce(path, true)
	}
}

// debounce schedules the handler after the quiet period. A newer event for
// the same file replaces the pending one.
func (dw *DocumentWatcher) debounce(path string, removed bool) {
	dw.debounceMu.Lock()
	defer dw.debounceMu.Unlock()

	if timer, exists := dw.debounceTimers[path]; exists {
		timer.Stop()
	}
	dw.debounceTimers[path] = time.AfterFunc(
		time.Duration(dw.options.DebounceMs)*time.Millisecond,
		func() {
			dw.handler(path, removed)
			dw.debounceMu.Lock()
			delete(dw.debounceTimers, path)
			dw.debounceMu.Unlock()
		},
	)
}

func (dw *DocumentWatcher) rel(path string) string {
	relPath, err := filepath.Rel(dw.root, path)
	if err != nil {
		relPath = path
	}
	return filepath.ToSlash(relPath)
}

func (dw *DocumentWatcher) excluded(path string) bool {
	relPath := dw.rel(path)
	for _, pattern := range dw.options.Excludes {
		if ok, _ := doublestar.PathMatch(pattern, relPath); ok {
			return true
		}
	}
	return false
}

func (dw *DocumentWatcher) matches(path string) bool {
	if dw.excluded(path) {
		return false
	}
	relPath := dw.rel(path)
	for _, pattern := range dw.options.Includes {
		if ok, _ := doublestar.PathMatch(pattern, relPath); ok {
			return true
		}
	}
	return false
}
