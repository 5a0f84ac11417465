package badger

import (
	"context"
	"testing"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry(fp core.Fingerprint) *core.CacheEntry {
	return &core.CacheEntry{
		Fingerprint: fp,
		Dimension:   3,
		CourseIds:   []core.ID{1, 2},
		Vectors:     [][]float32{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}},
		Abbreviations: core.AbbreviationMap{
			"ml": "machine learning ml",
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestCacheRepository_PutGet(t *testing.T) {
	store, backend, err := NewMemoryStore()
	require.NoError(t, err)
	defer func() {
		store.Close()
		backend.Close()
	}()

	ctx := context.Background()
	entry := testEntry("fp-one")

	require.NoError(t, store.PutEntry(ctx, entry))

	got, err := store.GetEntry(ctx, "fp-one")
	require.NoError(t, err)
	assert.Equal(t, entry.Fingerprint, got.Fingerprint)
	assert.Equal(t, entry.CourseIds, got.CourseIds)
	assert.Equal(t, entry.Vectors, got.Vectors)
	assert.Equal(t, "machine learning ml", got.Abbreviations["ml"])
}

func TestCacheRepository_GetMissing(t *testing.T) {
	store, backend, err := NewMemoryStore()
	require.NoError(t, err)
	defer func() {
		store.Close()
		backend.Close()
	}()

	_, err = store.GetEntry(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCacheRepository_GetCorrupt(t *testing.T) {
	store, backend, err := NewMemoryStore()
	require.NoError(t, err)
	defer func() {
		store.Close()
		backend.Close()
	}()

	// Plant garbage bytes under a cache key.
	err = backend.WithTx(func(tx *badgerdb.Txn) error {
		if err := tx.Set(makeCacheEntryKey("bad"), []byte{0xff, 0x01}); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	require.NoError(t, err)

	_, err = store.GetEntry(context.Background(), "bad")
	assert.ErrorIs(t, err, storage.ErrCacheCorrupt)
}

func TestCacheRepository_DeleteAndList(t *testing.T) {
	store, backend, err := NewMemoryStore()
	require.NoError(t, err)
	defer func() {
		store.Close()
		backend.Close()
	}()

	ctx := context.Background()
	require.NoError(t, store.PutEntry(ctx, testEntry("fp-a")))
	require.NoError(t, store.PutEntry(ctx, testEntry("fp-b")))

	fps, err := store.Fingerprints(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []core.Fingerprint{"fp-a", "fp-b"}, fps)

	require.NoError(t, store.DeleteEntry(ctx, "fp-a"))
	_, err = store.GetEntry(ctx, "fp-a")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting a missing entry is not an error.
	assert.NoError(t, store.DeleteEntry(ctx, "fp-a"))
}

func TestCacheRepository_PutRejectsInvalidEntry(t *testing.T) {
	store, backend, err := NewMemoryStore()
	require.NoError(t, err)
	defer func() {
		store.Close()
		backend.Close()
	}()

	entry := testEntry("fp-bad")
	entry.Vectors = entry.Vectors[:1] // mismatch with CourseIds
	err = store.PutEntry(context.Background(), entry)
	assert.ErrorIs(t, err, core.ErrVectorCountMismatch)
}
