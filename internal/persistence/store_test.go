package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "subcache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBucketGetPut(t *testing.T) {
	store := openTestStore(t)

	bucket, err := store.Bucket("azure")
	require.NoError(t, err)

	_, ok := bucket.Get("Hei")
	assert.False(t, ok)

	bucket.Put("Hei", "Hi")
	got, ok := bucket.Get("Hei")
	require.True(t, ok)
	assert.Equal(t, "Hi", got)
}

func TestBucketFirstWriteWins(t *testing.T) {
	store := openTestStore(t)
	bucket, err := store.Bucket("azure")
	require.NoError(t, err)

	bucket.Put("Hei", "Hi")
	bucket.Put("Hei", "Howdy")

	got, _ := bucket.Get("Hei")
	assert.Equal(t, "Hi", got)
}

func TestBucketsAreIsolatedPerBackend(t *testing.T) {
	store := openTestStore(t)

	azure, err := store.Bucket("azure")
	require.NoError(t, err)
	google, err := store.Bucket("google")
	require.NoError(t, err)

	azure.Put("Hei", "Hi")
	_, ok := google.Get("Hei")
	assert.False(t, ok)
}

func TestBucketPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subcache.db")

	store, err := Open(path)
	require.NoError(t, err)
	bucket, err := store.Bucket("argos")
	require.NoError(t, err)
	bucket.Put("Mitä kuuluu?", "How are you?")
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()
	bucket, err = store.Bucket("argos")
	require.NoError(t, err)

	got, ok := bucket.Get("Mitä kuuluu?")
	require.True(t, ok)
	assert.Equal(t, "How are you?", got)
}

func TestBucketNameValidation(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Bucket("no spaces; DROP TABLE")
	assert.Error(t, err)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}
