package jsonfile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	return store
}

func TestCollectionLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	collection := NewCollection[record](store, "records")

	items, err := collection.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollectionLoadEmptyFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "records.json"), nil, 0o644))

	collection := NewCollection[record](store, "records")

	items, err := collection.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCollectionLoadCorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "records.json"), []byte("{not json"), 0o644))

	collection := NewCollection[record](store, "records")

	_, err := collection.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt collection file")
}

func TestCollectionUpdatePersists(t *testing.T) {
	store := newTestStore(t)
	collection := NewCollection[record](store, "records")

	err := collection.Update(func(items []record) ([]record, error) {
		return append(items, record{ID: "a", Value: 1}), nil
	})
	require.NoError(t, err)

	// A fresh collection over the same file sees the write.
	reopened := NewCollection[record](store, "records")
	items, err := reopened.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}

func TestCollectionUpdateErrorAbortsWrite(t *testing.T) {
	store := newTestStore(t)
	collection := NewCollection[record](store, "records")

	require.NoError(t, collection.Update(func(items []record) ([]record, error) {
		return append(items, record{ID: "a"}), nil
	}))

	err := collection.Update(func(items []record) ([]record, error) {
		return nil, assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	items, err := collection.Load()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCollectionConcurrentUpdatesLoseNothing(t *testing.T) {
	store := newTestStore(t)
	collection := NewCollection[record](store, "records")

	const writers = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = collection.Update(func(items []record) ([]record, error) {
				return append(items, record{Value: n}), nil
			})
		}(i)
	}
	wg.Wait()

	items, err := collection.Load()
	require.NoError(t, err)
	assert.Len(t, items, writers)
}

func TestStoreSharesLockPerFile(t *testing.T) {
	store := newTestStore(t)

	first := NewCollection[record](store, "records")
	second := NewCollection[record](store, "records")
	other := NewCollection[record](store, "others")

	assert.Same(t, first.lock, second.lock)
	assert.NotSame(t, first.lock, other.lock)
}
