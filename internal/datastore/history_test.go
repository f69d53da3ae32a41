package datastore

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *HistoryStore {
	t.Helper()

	store, err := NewHistoryStore(filepath.Join(t.TempDir(), "history", "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndReadInvocations(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordInvocation(InvocationEntry{
		ToolName:   "check_site_health",
		Locator:    "https://example.com/",
		Success:    true,
		DurationMs: 1234,
	}))
	require.NoError(t, store.RecordInvocation(InvocationEntry{
		ToolName:   "take_screenshot",
		Locator:    "http://10.0.0.1/",
		Success:    false,
		Error:      "security rejection: access to private IP ranges is blocked",
		DurationMs: 2,
	}))

	entries, err := store.RecentInvocations(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "take_screenshot", entries[0].ToolName)
	assert.False(t, entries[0].Success)
	assert.Contains(t, entries[0].Error, "security rejection")
	assert.Equal(t, "check_site_health", entries[1].ToolName)
	assert.True(t, entries[1].Success)
	assert.Empty(t, entries[1].Error)
	assert.Equal(t, int64(1234), entries[1].DurationMs)
}

func TestRecentInvocationsLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordInvocation(InvocationEntry{
			ToolName: "check_element",
			Locator:  "https://example.com/",
			Success:  true,
		}))
	}

	entries, err := store.RecentInvocations(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// Non-positive limits fall back to a sane default instead of erroring.
	entries, err = store.RecentInvocations(0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestEmptyHistory(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.RecentInvocations(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
