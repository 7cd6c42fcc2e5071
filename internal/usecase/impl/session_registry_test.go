package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"hafood/internal/domain/cart"
	"hafood/internal/domain/repository"
	"hafood/internal/infra/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRegistry(t *testing.T, repo repository.CartSnapshotRepository, mockClock *clock.MockClock) *SessionRegistry {
	t.Helper()

	registry := newSessionRegistry(repo, mockClock, createTestLogger(nil), createTestCartConfig())
	t.Cleanup(func() { _ = registry.Close(context.Background()) })

	return registry
}

func TestSessionRegistry_StorageKey(t *testing.T) {
	registry := createTestRegistry(t, createTestSnapshotRepo(t), createTestClock())

	assert.Equal(t, "ha-food-cart", registry.StorageKey(""))
	assert.Equal(t, "ha-food-cart:s-123", registry.StorageKey("s-123"))
}

func TestSessionRegistry_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("same session shares one store", func(t *testing.T) {
		registry := createTestRegistry(t, createTestSnapshotRepo(t), createTestClock())

		first, releaseFirst, err := registry.Acquire(ctx, "s-1")
		require.NoError(t, err)
		defer releaseFirst()
		second, releaseSecond, err := registry.Acquire(ctx, "s-1")
		require.NoError(t, err)
		defer releaseSecond()
		other, releaseOther, err := registry.Acquire(ctx, "s-2")
		require.NoError(t, err)
		defer releaseOther()

		assert.Same(t, first, second)
		assert.NotSame(t, first, other)
		assert.Equal(t, 2, registry.sessionCount())
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		registry := createTestRegistry(t, createTestSnapshotRepo(t), createTestClock())

		store, release, err := registry.Acquire(ctx, "s-1")
		require.NoError(t, err)
		store.Dispatch(ctx, cart.AddItem{Product: createTestProduct("A1", 100, 5), Quantity: 2, At: testStart})
		release()

		other, releaseOther, err := registry.Acquire(ctx, "s-2")
		require.NoError(t, err)
		defer releaseOther()

		assert.Empty(t, other.Snapshot().Items)
	})

	t.Run("concurrent first use rehydrates once", func(t *testing.T) {
		registry := createTestRegistry(t, createTestSnapshotRepo(t), createTestClock())

		var wg sync.WaitGroup
		stores := make([]*cartStore, 8)
		for i := range stores {
			wg.Add(1)
			go func() {
				defer wg.Done()

				store, release, err := registry.Acquire(ctx, "s-1")
				if err != nil {
					return
				}
				defer release()
				stores[i] = store
			}()
		}
		wg.Wait()

		for _, store := range stores {
			assert.Same(t, stores[0], store)
		}
		assert.Equal(t, 1, registry.sessionCount())
	})

	t.Run("closed registry rejects acquire", func(t *testing.T) {
		registry := createTestRegistry(t, createTestSnapshotRepo(t), createTestClock())
		require.NoError(t, registry.Close(ctx))

		_, _, err := registry.Acquire(ctx, "s-1")

		assert.ErrorIs(t, err, ErrRegistryClosed)
	})
}

func TestSessionRegistry_EvictIdle(t *testing.T) {
	ctx := context.Background()

	t.Run("evicts idle sessions after the idle TTL", func(t *testing.T) {
		mockClock := createTestClock()
		registry := createTestRegistry(t, createTestSnapshotRepo(t), mockClock)

		_, release, err := registry.Acquire(ctx, "s-1")
		require.NoError(t, err)
		release()

		mockClock.Advance(29 * time.Minute)
		assert.Equal(t, 0, registry.EvictIdle(ctx))
		assert.Equal(t, 1, registry.sessionCount())

		mockClock.Advance(2 * time.Minute)
		assert.Equal(t, 1, registry.EvictIdle(ctx))
		assert.Equal(t, 0, registry.sessionCount())
	})

	t.Run("keeps sessions that are in use", func(t *testing.T) {
		mockClock := createTestClock()
		registry := createTestRegistry(t, createTestSnapshotRepo(t), mockClock)

		_, release, err := registry.Acquire(ctx, "s-1")
		require.NoError(t, err)

		mockClock.Advance(time.Hour)
		assert.Equal(t, 0, registry.EvictIdle(ctx))

		release()
		mockClock.Advance(time.Hour)
		assert.Equal(t, 1, registry.EvictIdle(ctx))
	})

	t.Run("evicted session is rehydrated from storage", func(t *testing.T) {
		mockClock := createTestClock()
		registry := createTestRegistry(t, createTestSnapshotRepo(t), mockClock)

		store, release, err := registry.Acquire(ctx, "s-1")
		require.NoError(t, err)
		store.Dispatch(ctx, cart.AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 3, At: testStart})
		release()

		mockClock.Advance(time.Hour)
		require.Equal(t, 1, registry.EvictIdle(ctx))

		reopened, releaseReopened, err := registry.Acquire(ctx, "s-1")
		require.NoError(t, err)
		defer releaseReopened()

		assert.NotSame(t, store, reopened)
		state := reopened.Snapshot()
		require.Len(t, state.Items, 1)
		assert.Equal(t, 3, state.TotalItems)
		assertDecimal(t, "300000", state.TotalPrice)
	})
}

func TestSessionRegistry_EvictIdleDropsEmptyCarts(t *testing.T) {
	ctx := context.Background()
	mockClock := createTestClock()
	repo := createTestSnapshotRepo(t)
	registry := createTestRegistry(t, repo, mockClock)

	store, release, err := registry.Acquire(ctx, "s-1")
	require.NoError(t, err)
	store.Dispatch(ctx, cart.AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 1, At: testStart})
	store.Dispatch(ctx, cart.ClearCart{At: testStart})
	release()

	mockClock.Advance(time.Hour)
	require.Equal(t, 1, registry.EvictIdle(ctx))

	_, err = repo.Load(ctx, registry.StorageKey("s-1"))
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

// gatedSnapshotRepo blocks every Save until gate is closed.
type gatedSnapshotRepo struct {
	repository.CartSnapshotRepository
	gate chan struct{}
}

func (r *gatedSnapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	<-r.gate

	return r.CartSnapshotRepository.Save(ctx, key, data)
}

func TestSessionRegistry_AcquireWaitsForEvictedFlush(t *testing.T) {
	mockClock := createTestClock()
	repo := &gatedSnapshotRepo{CartSnapshotRepository: createTestSnapshotRepo(t), gate: make(chan struct{})}
	registry := createTestRegistry(t, repo, mockClock)

	store, release, err := registry.Acquire(context.Background(), "s-1")
	require.NoError(t, err)
	store.Dispatch(context.Background(), cart.AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 3, At: testStart})
	release()

	mockClock.Advance(time.Hour)
	evicted := make(chan int, 1)
	go func() { evicted <- registry.EvictIdle(context.Background()) }()
	require.Eventually(t, func() bool { return registry.sessionCount() == 0 }, time.Second, time.Millisecond)

	time.AfterFunc(50*time.Millisecond, func() { close(repo.gate) })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reopened, releaseReopened, err := registry.Acquire(ctx, "s-1")
	require.NoError(t, err)
	defer releaseReopened()

	assert.Equal(t, 3, reopened.Snapshot().TotalItems)
	assert.Equal(t, 1, <-evicted)
}

func TestSessionRegistry_Observe(t *testing.T) {
	ctx := context.Background()
	registry := createTestRegistry(t, createTestSnapshotRepo(t), createTestClock())

	existing, releaseExisting, err := registry.Acquire(ctx, "s-1")
	require.NoError(t, err)
	defer releaseExisting()

	var mu sync.Mutex
	seen := map[string]int{}
	registry.Observe(func(sessionID string) Observer {
		return func(context.Context, Change) {
			mu.Lock()
			defer mu.Unlock()
			seen[sessionID]++
		}
	})

	later, releaseLater, err := registry.Acquire(ctx, "s-2")
	require.NoError(t, err)
	defer releaseLater()

	existing.Dispatch(ctx, cart.ClearCart{At: testStart})
	later.Dispatch(ctx, cart.ClearCart{At: testStart})
	later.Dispatch(ctx, cart.ClearCart{At: testStart})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{"s-1": 1, "s-2": 2}, seen)
}

func TestSessionRegistry_Close(t *testing.T) {
	ctx := context.Background()
	repo := createTestSnapshotRepo(t)
	registry := createTestRegistry(t, repo, createTestClock())

	store, release, err := registry.Acquire(ctx, "")
	require.NoError(t, err)
	store.Dispatch(ctx, cart.AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 4, At: testStart})
	release()

	require.NoError(t, registry.Close(ctx))
	require.NoError(t, registry.Close(ctx))

	assert.Equal(t, 4, loadPersisted(t, repo).TotalItems)
}
