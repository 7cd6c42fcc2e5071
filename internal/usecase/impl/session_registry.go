package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"hafood/config"
	"hafood/internal/domain/lifecycle"
	"hafood/internal/domain/repository"
	"hafood/internal/domain/service"
	"hafood/internal/errors"

	"go.uber.org/fx"
)

const maxJanitorInterval = time.Minute

// ErrRegistryClosed is returned when a session is acquired after shutdown started.
var ErrRegistryClosed = errors.New("session registry closed")

// sessionEntry tracks one hosted cart store.
type sessionEntry struct {
	sessionID  string
	store      *cartStore
	inUse      atomic.Int32
	lastAccess atomic.Int64
}

// SessionRegistry hosts one cart store per session. Stores are created and rehydrated on first use
// and flushed then evicted once idle.
type SessionRegistry struct {
	repo           repository.CartSnapshotRepository
	clock          service.Clock
	logger         *slog.Logger
	storageKey     string
	idleTTL        time.Duration
	persistTimeout time.Duration

	mu        sync.Mutex
	sessions  map[string]*sessionEntry
	evicting  map[string]*cartStore
	observers []func(sessionID string) Observer
	closed    bool

	stopJanitor context.CancelFunc
	janitorDone chan struct{}
}

// SessionRegistryParams holds dependencies for SessionRegistry, injected by Fx
type SessionRegistryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Clock  service.Clock
	Repo   repository.CartSnapshotRepository
}

// NewSessionRegistry creates the registry and ties its janitor and final flush to the app lifecycle.
func NewSessionRegistry(params SessionRegistryParams) *SessionRegistry {
	registry := newSessionRegistry(params.Repo, params.Clock, params.Logger, params.Config.Cart)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			registry.startJanitor()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return registry.Close(ctx)
		},
	})

	return registry
}

func newSessionRegistry(
	repo repository.CartSnapshotRepository,
	clock service.Clock,
	logger *slog.Logger,
	cfg config.CartConfig,
) *SessionRegistry {
	return &SessionRegistry{
		repo:           repo,
		clock:          clock,
		logger:         logger,
		storageKey:     cfg.StorageKey,
		idleTTL:        cfg.SessionIdleTTL,
		persistTimeout: cfg.PersistTimeout,
		sessions:       make(map[string]*sessionEntry),
		evicting:       make(map[string]*cartStore),
	}
}

// Observe subscribes an observer factory to every store, including stores created later.
func (r *SessionRegistry) Observe(factory func(sessionID string) Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observers = append(r.observers, factory)
	for _, entry := range r.sessions {
		entry.store.Subscribe(factory(entry.sessionID))
	}
}

// StorageKey returns the key the session's snapshot is persisted under.
func (r *SessionRegistry) StorageKey(sessionID string) string {
	if sessionID == "" {
		return r.storageKey
	}

	return r.storageKey + ":" + sessionID
}

// Acquire returns the session's store, creating and rehydrating it on first use.
// The returned release function must be called once the caller is done with the store.
func (r *SessionRegistry) Acquire(ctx context.Context, sessionID string) (*cartStore, func(), error) {
	key := r.StorageKey(sessionID)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()

		return nil, nil, ErrRegistryClosed
	}

	entry, ok := r.sessions[key]
	if ok {
		r.retain(entry)
		r.mu.Unlock()

		return entry.store, r.releaser(entry), nil
	}

	store := newCartStore(key, r.repo, r.clock, r.logger, r.persistTimeout)
	for _, factory := range r.observers {
		store.Subscribe(factory(sessionID))
	}

	entry = &sessionEntry{sessionID: sessionID, store: store}
	r.retain(entry)
	r.sessions[key] = entry
	previous := r.evicting[key]

	// Concurrent acquirers find the entry but block on the store lock until rehydration is done.
	store.mu.Lock()
	r.mu.Unlock()

	if previous != nil {
		previous.waitClosed(ctx)
	}
	store.rehydrateLocked(ctx)
	store.mu.Unlock()

	r.logger.Debug("Cart session opened", slog.String("storage_key", key))

	return store, r.releaser(entry), nil
}

// sessionCount returns the number of hosted sessions.
func (r *SessionRegistry) sessionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *SessionRegistry) retain(entry *sessionEntry) {
	entry.inUse.Add(1)
	entry.lastAccess.Store(r.clock.Now().UnixNano())
}

func (r *SessionRegistry) releaser(entry *sessionEntry) func() {
	var once sync.Once

	return func() {
		once.Do(func() {
			entry.lastAccess.Store(r.clock.Now().UnixNano())
			entry.inUse.Add(-1)
		})
	}
}

// EvictIdle flushes and drops every store that is unused and idle for longer than the idle TTL.
// Sessions evicted with an empty cart have their snapshot removed.
func (r *SessionRegistry) EvictIdle(ctx context.Context) int {
	cutoff := r.clock.Now().Add(-r.idleTTL).UnixNano()

	r.mu.Lock()
	idle := make(map[string]*cartStore)
	for key, entry := range r.sessions {
		if entry.inUse.Load() > 0 || entry.lastAccess.Load() > cutoff {
			continue
		}
		idle[key] = entry.store
		r.evicting[key] = entry.store
		delete(r.sessions, key)
	}
	r.mu.Unlock()

	for key, store := range idle {
		if err := store.Evict(ctx); err != nil {
			r.logger.Warn("Failed to flush evicted cart", slog.String("storage_key", key), slog.Any("error", err))
		}

		r.mu.Lock()
		if r.evicting[key] == store {
			delete(r.evicting, key)
		}
		r.mu.Unlock()
	}

	if len(idle) > 0 {
		r.logger.Debug("Evicted idle cart sessions", slog.Int("count", len(idle)))
	}

	return len(idle)
}

func (r *SessionRegistry) startJanitor() {
	interval := min(r.idleTTL/2, maxJanitorInterval)
	if interval <= 0 {
		interval = maxJanitorInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	r.mu.Lock()
	r.stopJanitor = cancel
	r.janitorDone = done
	r.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				evictCtx, evictCancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				r.EvictIdle(evictCtx)
				evictCancel()
			}
		}
	}()
}

// Close stops the janitor and flushes every hosted store.
func (r *SessionRegistry) Close(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()

		return nil
	}
	r.closed = true
	stopJanitor, janitorDone := r.stopJanitor, r.janitorDone
	stores := make([]*cartStore, 0, len(r.sessions)+len(r.evicting))
	for _, entry := range r.sessions {
		stores = append(stores, entry.store)
	}
	for _, store := range r.evicting {
		stores = append(stores, store)
	}
	r.mu.Unlock()

	if stopJanitor != nil {
		stopJanitor()
		<-janitorDone
	}

	var errs []error
	for _, store := range stores {
		if err := store.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	r.logger.Info("Cart sessions flushed", slog.Int("count", len(stores)))

	return errors.Join(errs...)
}
