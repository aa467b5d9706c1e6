package checklist

import (
	"testing"
	"time"

	"list-control/feature/checklist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	t.Run("Dedup preserves first-seen order", func(t *testing.T) {
		codes := Canonicalize([]string{"a1", "A1", "b2"})
		assert.Equal(t, []string{"A1", "B2"}, codes)
	})

	t.Run("Drops empty and whitespace rows", func(t *testing.T) {
		codes := Canonicalize([]string{"", "  ", "x9", "\t"})
		assert.Equal(t, []string{"X9"}, codes)
	})

	t.Run("Trims before comparing", func(t *testing.T) {
		codes := Canonicalize([]string{" lbl001 ", "LBL001", "lbl002"})
		assert.Equal(t, []string{"LBL001", "LBL002"}, codes)
	})
}

func TestStoreLookup(t *testing.T) {
	store := NewStore()
	store.Replace([]string{"LBL001", "LBL002"})

	assert.True(t, store.Lookup("LBL001"))
	assert.True(t, store.Lookup("lbl001"), "lookup must be case-insensitive")
	assert.True(t, store.Lookup(" lbl002 "))
	assert.False(t, store.Lookup("LBL999"))
}

func TestStoreMarkFound(t *testing.T) {
	store := NewStore()
	store.Replace([]string{"LBL001", "LBL002"})

	first := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	second := first.Add(5 * time.Minute)

	rec := store.MarkFound("LBL001", first)
	assert.Equal(t, models.StatusFound, rec.Status)
	assert.Equal(t, "LBL001", rec.Code)

	// Re-checking refreshes the timestamp only.
	store.MarkFound("lbl001", second)
	got, ok := store.Check("LBL001")
	require.True(t, ok)
	assert.Equal(t, second, got.CheckedAt)

	_, checked := store.Counts()
	assert.Equal(t, 1, checked)
}

func TestStoreSnapshotOrder(t *testing.T) {
	store := NewStore()
	store.Replace([]string{"LBL001", "LBL002", "LBL003"})

	now := time.Now()
	store.MarkFound("LBL003", now)
	store.MarkFound("LBL001", now.Add(time.Second))
	store.MarkFound("LBL003", now.Add(2*time.Second)) // refresh, order unchanged

	codes, checks := store.Snapshot()
	assert.Equal(t, []string{"LBL001", "LBL002", "LBL003"}, codes)
	require.Len(t, checks, 2)
	assert.Equal(t, "LBL003", checks[0].Code, "first-check order is preserved")
	assert.Equal(t, "LBL001", checks[1].Code)
}

func TestStoreReplaceClearsChecks(t *testing.T) {
	store := NewStore()
	store.Replace([]string{"LBL001"})
	store.MarkFound("LBL001", time.Now())

	store.Replace([]string{"LBL002"})
	total, checked := store.Counts()
	assert.Equal(t, 1, total)
	assert.Zero(t, checked)
}

func TestStoreClearIdempotent(t *testing.T) {
	store := NewStore()
	store.Replace([]string{"LBL001"})
	store.MarkFound("LBL001", time.Now())

	store.Clear()
	store.Clear()

	total, checked := store.Counts()
	assert.Zero(t, total)
	assert.Zero(t, checked)
	assert.Empty(t, store.Codes())
}

func TestStoreReplaceAll(t *testing.T) {
	store := NewStore()
	store.Replace([]string{"OLD"})

	checks := []models.CheckRecord{
		{Code: "LBL002", Status: models.StatusFound, CheckedAt: time.Now()},
	}
	store.ReplaceAll([]string{"LBL001", "LBL002"}, checks)

	assert.Equal(t, []string{"LBL001", "LBL002"}, store.Codes())
	assert.False(t, store.Lookup("OLD"))
	rec, ok := store.Check("LBL002")
	require.True(t, ok)
	assert.Equal(t, models.StatusFound, rec.Status)
}
