package redisstore

import (
	"context"
	"testing"
	"time"

	"hafood/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and a store pointing to it.
func setupTestRedis(t *testing.T, ttl time.Duration) (repository.CartSnapshotRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return NewCartSnapshotStore(client, ttl), mr
}

func TestCartSnapshotStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss", func(t *testing.T) {
		store, _ := setupTestRedis(t, 0)

		_, err := store.Load(ctx, "ha-food-cart:s1")

		assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	})

	t.Run("existing value", func(t *testing.T) {
		store, mr := setupTestRedis(t, 0)
		require.NoError(t, mr.Set("ha-food-cart:s1", `{"totalItems":2}`))

		data, err := store.Load(ctx, "ha-food-cart:s1")

		require.NoError(t, err)
		assert.JSONEq(t, `{"totalItems":2}`, string(data))
	})

	t.Run("server failure", func(t *testing.T) {
		store, mr := setupTestRedis(t, 0)
		mr.SetError("ERR server unavailable")

		_, err := store.Load(ctx, "ha-food-cart:s1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrSnapshotNotFound)
	})
}

func TestCartSnapshotStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("without ttl the key never expires", func(t *testing.T) {
		store, mr := setupTestRedis(t, 0)

		require.NoError(t, store.Save(ctx, "ha-food-cart", []byte(`{"totalItems":1}`)))

		assert.True(t, mr.Exists("ha-food-cart"))
		assert.Zero(t, mr.TTL("ha-food-cart"))
	})

	t.Run("ttl includes jitter", func(t *testing.T) {
		store, mr := setupTestRedis(t, time.Hour)

		require.NoError(t, store.Save(ctx, "ha-food-cart", []byte(`{"totalItems":1}`)))

		ttl := mr.TTL("ha-food-cart")
		assert.GreaterOrEqual(t, ttl, time.Hour)
		assert.Less(t, ttl, time.Hour+6*time.Minute)

		mr.FastForward(2 * time.Hour)
		assert.False(t, mr.Exists("ha-food-cart"))
	})

	t.Run("delete", func(t *testing.T) {
		store, mr := setupTestRedis(t, 0)

		require.NoError(t, store.Save(ctx, "ha-food-cart", []byte(`{}`)))
		require.NoError(t, store.Delete(ctx, "ha-food-cart"))
		require.NoError(t, store.Delete(ctx, "ha-food-cart"))

		assert.False(t, mr.Exists("ha-food-cart"))
	})
}
