package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, opts Options, handler ChangeHandler) *DocumentWatcher {
	t.Helper()
	if handler == nil {
		handler = func(string, bool) {}
	}
	dw, err := NewDocumentWatcher(handler, opts, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dw.Stop() })
	return dw
}

func TestNewDocumentWatcher_RequiresHandler(t *testing.T) {
	_, err := NewDocumentWatcher(nil, DefaultOptions(), nil)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	dw := newTestWatcher(t, Options{}, nil)
	assert.Equal(t, 200, dw.options.DebounceMs)
	assert.Equal(t, []string{"**/*.json"}, dw.options.Includes)
}

func TestMatches(t *testing.T) {
	dw := newTestWatcher(t, Options{
		Includes: []string{"**/*.json"},
		Excludes: []string{"drafts/**"},
	}, nil)
	dw.root = "/exports"

	assert.True(t, dw.matches("/exports/file.json"))
	assert.True(t, dw.matches("/exports/nested/deep/file.json"))
	assert.False(t, dw.matches("/exports/file.png"))
	assert.False(t, dw.matches("/exports/drafts/file.json"))
}

func TestStop_Idempotent(t *testing.T) {
	dw := newTestWatcher(t, DefaultOptions(), nil)
	assert.NoError(t, dw.Stop())
	assert.NoError(t, dw.Stop())
}

func TestStartAfterStopFails(t *testing.T) {
	dw := newTestWatcher(t, DefaultOptions(), nil)
	require.NoError(t, dw.Stop())
	assert.Error(t, dw.Start(t.TempDir()))
}

func TestDebounce_CoalescesRapidWrites(t *testing.T) {
	var mu sync.Mutex
	var got []string
	dw := newTestWatcher(t, Options{DebounceMs: 50}, func(path string, removed bool) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, path)
	})

	for i := 0; i < 5; i++ {
		dw.debounce("/exports/a.json", false)
	}
	assert.Equal(t, 1, dw.Pending())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"/exports/a.json"}, got)
	mu.Unlock()
	assert.Equal(t, 0, dw.Pending())
}

func TestDebounce_DistinctFilesFireSeparately(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	dw := newTestWatcher(t, Options{DebounceMs: 20}, func(path string, removed bool) {
		mu.Lock()
		defer mu.Unlock()
		seen[path] = true
	})

	dw.debounce("/exports/a.json", false)
	dw.debounce("/exports/b.json", false)
	assert.Equal(t, 2, dw.Pending())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestWatch_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	type event struct {
		path    string
		removed bool
	}
	events := make(chan event, 8)
	dw := newTestWatcher(t, Options{DebounceMs: 20}, func(path string, removed bool) {
		events <- event{path: path, removed: removed}
	})
	require.NoError(t, dw.Start(dir))

	path := filepath.Join(dir, "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	select {
	case ev := <-events:
		assert.Equal(t, path, ev.path)
		assert.False(t, ev.removed)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	require.NoError(t, os.Remove(path))
	select {
	case ev := <-events:
		assert.Equal(t, path, ev.path)
		assert.True(t, ev.removed)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for remove event")
	}
}
