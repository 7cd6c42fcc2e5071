package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hafood/internal/domain/cart"
	"hafood/internal/domain/entity"
	"hafood/internal/domain/repository"
	"hafood/internal/domain/service"
	"hafood/internal/errors"
)

// Change describes one dispatched action and the states around it.
type Change struct {
	Action   cart.Action
	Previous entity.Cart
	Current  entity.Cart
}

// Observer is notified after every dispatch, outside the store lock.
type Observer func(ctx context.Context, change Change)

// cartStore owns the cart state of one session. Dispatches are serialized by mu;
// snapshots are written by a single background writer that always persists the latest state.
type cartStore struct {
	key            string
	repo           repository.CartSnapshotRepository
	clock          service.Clock
	logger         *slog.Logger
	persistTimeout time.Duration

	mu           sync.Mutex
	state        entity.Cart
	closed       bool
	// discard is written once, before stop is closed, and read by the writer after it.
	discard      bool
	observers    map[int]Observer
	nextObserver int

	pendingMu sync.Mutex
	pending   *entity.Cart
	wake      chan struct{}
	stop      chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
}

func newCartStore(
	key string,
	repo repository.CartSnapshotRepository,
	clock service.Clock,
	logger *slog.Logger,
	persistTimeout time.Duration,
) *cartStore {
	s := &cartStore{
		key:            key,
		repo:           repo,
		clock:          clock,
		logger:         logger.With(slog.String("storage_key", key)),
		persistTimeout: persistTimeout,
		state:          entity.EmptyCart(clock.Now()),
		observers:      make(map[int]Observer),
		wake:           make(chan struct{}, 1),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	go s.writeLoop()

	return s
}

// Rehydrate replaces the state with the persisted snapshot. A missing, unreadable or corrupt
// snapshot leaves the cart empty. Nothing is persisted and no observer is notified.
func (s *cartStore) Rehydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rehydrateLocked(ctx)
}

// rehydrateLocked ignores cancellation of ctx: a load aborted by the caller would
// leave an empty cart that the next mutation persists over the stored one.
func (s *cartStore) rehydrateLocked(ctx context.Context) {
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistTimeout)
	defer cancel()

	data, err := s.repo.Load(loadCtx, s.key)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			s.logger.Debug("No persisted cart, starting empty")

			return
		}

		s.logger.Warn("Failed to load persisted cart, starting empty", slog.Any("error", err))

		return
	}

	var snapshot entity.Cart
	if err := json.Unmarshal(data, &snapshot); err != nil {
		s.logger.Error("Persisted cart is corrupt, starting empty", slog.Any("error", err))

		return
	}

	s.state = cart.Reduce(s.state, cart.LoadCart{Snapshot: snapshot})
}

// Snapshot returns a copy of the current state.
func (s *cartStore) Snapshot() entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Dispatch applies the action, schedules a persist of the new state and notifies observers.
func (s *cartStore) Dispatch(ctx context.Context, action cart.Action) entity.Cart {
	s.mu.Lock()

	previous := s.state
	s.state = cart.Reduce(previous, action)
	current := s.state.Clone()

	if s.closed {
		// The writer is stopping; write inline once its final flush is done.
		<-s.done
		s.persist(current)
	} else {
		s.schedule(current)
	}

	observers := make([]Observer, 0, len(s.observers))
	for _, observer := range s.observers {
		observers = append(observers, observer)
	}

	s.mu.Unlock()

	change := Change{Action: action, Previous: previous, Current: current}
	for _, observer := range observers {
		observer(ctx, change)
	}

	return current.Clone()
}

// Subscribe registers an observer and returns a function removing it.
func (s *cartStore) Subscribe(observer Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = observer

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.observers, id)
	}
}

// Close flushes the last pending snapshot and stops the writer.
func (s *cartStore) Close(ctx context.Context) error {
	return s.shutdown(ctx, false)
}

// Evict stops the store like Close, but removes the persisted snapshot instead of
// writing it when the cart is empty. A missing snapshot rehydrates as an empty cart.
func (s *cartStore) Evict(ctx context.Context) error {
	return s.shutdown(ctx, true)
}

func (s *cartStore) shutdown(ctx context.Context, evict bool) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		s.discard = evict && len(s.state.Items) == 0
	}
	s.mu.Unlock()

	s.stopOnce.Do(func() { close(s.stop) })

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "flush cart %s", s.key)
	}
}

// waitClosed blocks until the writer has finished its final flush. It ignores
// cancellation of ctx and gives up after the writer's worst case of two persists.
func (s *cartStore) waitClosed(ctx context.Context) {
	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*s.persistTimeout)
	defer cancel()

	select {
	case <-s.done:
	case <-waitCtx.Done():
		s.logger.Warn("Timed out waiting for evicted cart to flush")
	}
}

// schedule replaces the pending snapshot and wakes the writer. Callers hold mu so
// pending snapshots are always replaced in dispatch order.
func (s *cartStore) schedule(snapshot entity.Cart) {
	s.pendingMu.Lock()
	s.pending = &snapshot
	s.pendingMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *cartStore) writeLoop() {
	defer close(s.done)

	for {
		select {
		case <-s.wake:
			s.flushPending()
		case <-s.stop:
			if s.discard {
				s.deleteSnapshot()
			} else {
				s.flushPending()
			}

			return
		}
	}
}

func (s *cartStore) flushPending() {
	s.pendingMu.Lock()
	snapshot := s.pending
	s.pending = nil
	s.pendingMu.Unlock()

	if snapshot == nil {
		return
	}

	s.persist(*snapshot)
}

// deleteSnapshot drops any pending write and removes the persisted snapshot.
func (s *cartStore) deleteSnapshot() {
	s.pendingMu.Lock()
	s.pending = nil
	s.pendingMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, s.key); err != nil {
		s.logger.Error("Failed to delete empty cart snapshot", slog.Any("error", err))

		return
	}

	s.logger.Debug("Empty cart snapshot deleted")
}

// persist writes the snapshot. Failures are logged and never surface to callers.
func (s *cartStore) persist(snapshot entity.Cart) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("Failed to encode cart snapshot", slog.Any("error", err))

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()

	if err := s.repo.Save(ctx, s.key, data); err != nil {
		s.logger.Error("Failed to persist cart snapshot", slog.Any("error", err))

		return
	}

	s.logger.Debug("Cart snapshot persisted", slog.Int("total_items", snapshot.TotalItems))
}
