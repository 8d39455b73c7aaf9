package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapdesk/scrap_ledger_app/internal/apperrors"
	"github.com/scrapdesk/scrap_ledger_app/internal/repositories/storage"
)

type testRecord struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func TestMemoryStore_LoadMissingKey(t *testing.T) {
	store := storage.NewMemoryStore()

	_, err := store.Load(context.Background(), "nothing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryStore_SaveThenLoad(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "key", []byte(`[{"id":"a","value":1}]`)))

	raw, err := store.Load(ctx, "key")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","value":1}]`, string(raw))
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "key", []byte("original")))

	raw, err := store.Load(ctx, "key")
	require.NoError(t, err)
	raw[0] = 'X'

	again, err := store.Load(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "inventory_items", []byte(`[]`)))

	raw, err := store.Load(ctx, "inventory_items")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	// One JSON file per collection, no leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "inventory_items.json", entries[0].Name())
}

func TestFileStore_LoadMissingKey(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "nothing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFileStore_OverwriteReplacesSnapshot(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "suppliers", []byte(`["first"]`)))
	require.NoError(t, store.Save(ctx, "suppliers", []byte(`["second"]`)))

	raw, err := store.Load(ctx, "suppliers")
	require.NoError(t, err)
	assert.JSONEq(t, `["second"]`, string(raw))
}

func TestLoadCollection_MissingKeyYieldsDefault(t *testing.T) {
	store := storage.NewMemoryStore()

	out := storage.LoadCollection(context.Background(), store, "records", []testRecord{{ID: "seed"}})
	require.Len(t, out, 1)
	assert.Equal(t, "seed", out[0].ID)
}

func TestLoadCollection_CorruptSnapshotYieldsDefault(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "records", []byte("{this is not json")))

	out := storage.LoadCollection(ctx, store, "records", []testRecord{})
	assert.Empty(t, out)

	// The corrupt snapshot itself is left untouched.
	raw, err := store.Load(ctx, "records")
	require.NoError(t, err)
	assert.Equal(t, "{this is not json", string(raw))
}

func TestLoadCollection_NullSnapshotYieldsDefault(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "records", []byte("null")))

	out := storage.LoadCollection(ctx, store, "records", []testRecord{{ID: "seed"}})
	require.Len(t, out, 1)
	assert.Equal(t, "seed", out[0].ID)
}

func TestSaveThenLoadCollection_Roundtrip(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	in := []testRecord{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
	require.NoError(t, storage.SaveCollection(ctx, store, "records", in))

	out := storage.LoadCollection(ctx, store, "records", []testRecord{})
	assert.Equal(t, in, out)
}

func TestFileStore_CorruptFileFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "records.json"), []byte("garbage"), 0o644))

	out := storage.LoadCollection(context.Background(), store, "records", []testRecord{})
	assert.Empty(t, out)
}
