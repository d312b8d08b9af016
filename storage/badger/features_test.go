package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/coocvec/core"
	"github.com/poiesic/coocvec/storage"
)

func newTestStore(t *testing.T) storage.FeatureRepository {
	t.Helper()
	store, backend, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
		backend.Close()
	})
	return store
}

func testFrame(values ...float32) *core.FeatureFrame {
	frame := core.NewFeatureFrame([]string{"f_0"}, len(values))
	for i, v := range values {
		frame.Row(i)[0] = v
	}
	return frame
}

func TestNewFeatureStore(t *testing.T) {
	t.Run("nil backend", func(t *testing.T) {
		_, err := NewFeatureStore(nil)
		assert.ErrorIs(t, err, storage.ErrBackendRequired)
	})

	t.Run("closed backend", func(t *testing.T) {
		backend, err := OpenBackend("", true)
		require.NoError(t, err)
		require.NoError(t, backend.Close())

		_, err = NewFeatureStore(backend)
		assert.ErrorIs(t, err, storage.ErrBackendClosed)
	})
}

func TestFeatureStore_PutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	key := storage.FrameKey{Feature: "pair_lda_5", Dataset: 42, Split: storage.SplitTrain}
	require.NoError(t, store.PutFrame(ctx, key, testFrame(0.1, 0.9)))

	got, err := store.GetFrame(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []string{"f_0"}, got.Columns())
	assert.Equal(t, []float32{0.1, 0.9}, got.Data())

	t.Run("replaces on second put", func(t *testing.T) {
		require.NoError(t, store.PutFrame(ctx, key, testFrame(0.5)))
		got, err := store.GetFrame(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []float32{0.5}, got.Data())
	})

	t.Run("splits are distinct", func(t *testing.T) {
		test := key
		test.Split = storage.SplitTest
		_, err := store.GetFrame(ctx, test)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("datasets are distinct", func(t *testing.T) {
		other := key
		other.Dataset = 43
		_, err := store.GetFrame(ctx, other)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("nil frame rejected", func(t *testing.T) {
		assert.ErrorIs(t, store.PutFrame(ctx, key, nil), storage.ErrNilFrame)
	})
}

func TestFeatureStore_DeleteFeature(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	keys := []storage.FrameKey{
		{Feature: "pair_lda_5", Dataset: 1, Split: storage.SplitTrain},
		{Feature: "pair_lda_5", Dataset: 1, Split: storage.SplitTest},
		{Feature: "pair_svd_5", Dataset: 1, Split: storage.SplitTrain},
	}
	for _, key := range keys {
		require.NoError(t, store.PutFrame(ctx, key, testFrame(1)))
	}

	deleted, err := store.DeleteFeature(ctx, "pair_lda_5")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = store.GetFrame(ctx, keys[0])
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Other features are untouched.
	_, err = store.GetFrame(ctx, keys[2])
	assert.NoError(t, err)

	t.Run("unknown feature deletes nothing", func(t *testing.T) {
		deleted, err := store.DeleteFeature(ctx, "nope")
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

func TestFeatureStore_ListFrames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	listed, err := store.ListFrames(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	keys := []storage.FrameKey{
		{Feature: "composite_lda_30", Dataset: 7, Split: storage.SplitTrain},
		{Feature: "pair_nmf_5", Dataset: 9, Split: storage.SplitTest},
	}
	for _, key := range keys {
		require.NoError(t, store.PutFrame(ctx, key, testFrame(1)))
	}

	listed, err = store.ListFrames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, keys, listed)
}

func TestParseFrameKey(t *testing.T) {
	key := storage.FrameKey{Feature: "single_svd_tfidf", Dataset: 0xdeadbeef, Split: storage.SplitTest}
	parsed, err := parseFrameKey(makeFrameKey(key))
	require.NoError(t, err)
	assert.Equal(t, key, parsed)

	_, err = parseFrameKey([]byte("charec:5"))
	assert.Error(t, err)
}
