package fingerprint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uiforge/designaudit/pkg/store"
)

func TestCache_PutGet(t *testing.T) {
	c, err := NewCache(CacheConfig{MaxEntries: 4})
	require.NoError(t, err)

	_, ok := c.Get("fp1")
	assert.False(t, ok)

	c.Put("fp1", json.RawMessage(`{"component":"Button"}`))
	entry, ok := c.Get("fp1")
	require.True(t, ok)
	assert.Equal(t, "fp1", entry.Fingerprint)
	assert.JSONEq(t, `{"component":"Button"}`, string(entry.Result))
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestCache_PutIsIdempotent(t *testing.T) {
	c, err := NewCache(CacheConfig{MaxEntries: 4})
	require.NoError(t, err)

	first := c.Put("fp1", json.RawMessage(`{"v":1}`))
	second := c.Put("fp1", json.RawMessage(`{"v":2}`))

	assert.Equal(t, first, second)
	entry, _ := c.Get("fp1")
	assert.JSONEq(t, `{"v":1}`, string(entry.Result))
	assert.Equal(t, 1, c.Len())
}

func TestCache_EvictsAtCapacity(t *testing.T) {
	c, err := NewCache(CacheConfig{MaxEntries: 2})
	require.NoError(t, err)

	c.Put("a", json.RawMessage(`{}`))
	c.Put("b", json.RawMessage(`{}`))
	c.Put("c", json.RawMessage(`{}`))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCache_WriteThrough(t *testing.T) {
	kv := store.NewMemoryStore()
	c, err := NewCache(CacheConfig{MaxEntries: 4, Store: kv})
	require.NoError(t, err)

	c.Put("fp1", json.RawMessage(`{"component":"Button"}`))

	data, err := kv.Get("analysis/fp1")
	require.NoError(t, err)

	var entry CachedAnalysis
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "fp1", entry.Fingerprint)
}

func TestCache_Purge(t *testing.T) {
	c, err := NewCache(CacheConfig{})
	require.NoError(t, err)

	c.Put("fp1", json.RawMessage(`{}`))
	c.Purge()
	assert.Equal(t, 0, c.Len())
}
