package postgres

import (
	"context"
	"testing"
	"time"

	"hafood/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSnapshotRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key returns ErrSnapshotNotFound", func(t *testing.T) {
		repo := NewCartSnapshotRepository(createTestDB(t))

		data, err := repo.Load(ctx, "ha-food-cart")

		assert.Nil(t, data)
		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})

	t.Run("save then load returns the payload", func(t *testing.T) {
		repo := NewCartSnapshotRepository(createTestDB(t))
		payload := []byte(`{"items":[],"totalItems":0,"totalPrice":0,"updatedAt":"2024-01-01T00:00:00Z"}`)

		require.NoError(t, repo.Save(ctx, "ha-food-cart", payload))

		data, err := repo.Load(ctx, "ha-food-cart")
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(data))
	})

	t.Run("save overwrites the previous snapshot", func(t *testing.T) {
		db := createTestDB(t)
		repo := NewCartSnapshotRepository(db).(*cartSnapshotRepository)
		repo.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

		require.NoError(t, repo.Save(ctx, "ha-food-cart:s1", []byte(`{"totalItems":1}`)))
		repo.now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }
		require.NoError(t, repo.Save(ctx, "ha-food-cart:s1", []byte(`{"totalItems":2}`)))

		data, err := repo.Load(ctx, "ha-food-cart:s1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"totalItems":2}`, string(data))

		var count int64
		require.NoError(t, db.Table("cart_snapshots").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("keys are isolated", func(t *testing.T) {
		repo := NewCartSnapshotRepository(createTestDB(t))

		require.NoError(t, repo.Save(ctx, "ha-food-cart:a", []byte(`{"totalItems":1}`)))

		_, err := repo.Load(ctx, "ha-food-cart:b")
		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})

	t.Run("delete removes the snapshot and tolerates missing keys", func(t *testing.T) {
		repo := NewCartSnapshotRepository(createTestDB(t))

		require.NoError(t, repo.Save(ctx, "ha-food-cart", []byte(`{}`)))
		require.NoError(t, repo.Delete(ctx, "ha-food-cart"))
		require.NoError(t, repo.Delete(ctx, "ha-food-cart"))

		_, err := repo.Load(ctx, "ha-food-cart")
		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})
}
