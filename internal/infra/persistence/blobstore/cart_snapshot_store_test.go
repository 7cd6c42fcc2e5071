package blobstore

import (
	"context"
	"testing"

	"hafood/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

func createTestStore(t *testing.T) (repository.CartSnapshotRepository, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewCartSnapshotStore(bucket), bucket
}

func TestCartSnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key returns ErrSnapshotNotFound", func(t *testing.T) {
		store, _ := createTestStore(t)

		_, err := store.Load(ctx, "ha-food-cart")

		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		store, bucket := createTestStore(t)

		require.NoError(t, store.Save(ctx, "ha-food-cart:s1", []byte(`{"totalItems":3}`)))

		data, err := store.Load(ctx, "ha-food-cart:s1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"totalItems":3}`, string(data))

		attrs, err := bucket.Attributes(ctx, "ha-food-cart/s1.json")
		require.NoError(t, err)
		assert.Equal(t, "application/json", attrs.ContentType)
	})

	t.Run("delete tolerates missing keys", func(t *testing.T) {
		store, _ := createTestStore(t)

		require.NoError(t, store.Save(ctx, "ha-food-cart", []byte(`{}`)))
		require.NoError(t, store.Delete(ctx, "ha-food-cart"))
		require.NoError(t, store.Delete(ctx, "ha-food-cart"))

		_, err := store.Load(ctx, "ha-food-cart")
		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})

	t.Run("file bucket survives reopening", func(t *testing.T) {
		dir := t.TempDir()

		bucket, err := fileblob.OpenBucket(dir, nil)
		require.NoError(t, err)
		require.NoError(t, NewCartSnapshotStore(bucket).Save(ctx, "ha-food-cart", []byte(`{"totalItems":1}`)))
		require.NoError(t, bucket.Close())

		reopened, err := fileblob.OpenBucket(dir, nil)
		require.NoError(t, err)
		t.Cleanup(func() { _ = reopened.Close() })

		data, err := NewCartSnapshotStore(reopened).Load(ctx, "ha-food-cart")
		require.NoError(t, err)
		assert.JSONEq(t, `{"totalItems":1}`, string(data))
	})
}
