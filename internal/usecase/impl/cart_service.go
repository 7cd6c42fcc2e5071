package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "hafood/internal/delivery/context"
	"hafood/internal/domain/cart"
	"hafood/internal/domain/entity"
	domainerrors "hafood/internal/domain/errors"
	"hafood/internal/domain/lifecycle"
	"hafood/internal/domain/pricing"
	"hafood/internal/domain/service"
	"hafood/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cartService struct {
	sessions  *SessionRegistry
	discounts usecase.DiscountUsecase
	publisher service.EventPublisher
	clock     service.Clock
	logger    *slog.Logger

	inflight sync.WaitGroup
}

// CartServiceParams holds dependencies for the cart facade, injected by Fx
type CartServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Sessions  *SessionRegistry
	Discounts usecase.DiscountUsecase
	Publisher service.EventPublisher
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewCartService creates the cart facade and publishes a CartEvent for every mutation.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	svc := newCartService(params.Sessions, params.Discounts, params.Publisher, params.Clock, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			svc.waitEvents(ctx)

			return nil
		},
	})

	return svc
}

func newCartService(
	sessions *SessionRegistry,
	discounts usecase.DiscountUsecase,
	publisher service.EventPublisher,
	clock service.Clock,
	logger *slog.Logger,
) *cartService {
	svc := &cartService{
		sessions:  sessions,
		discounts: discounts,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
	sessions.Observe(svc.eventObserver)

	return svc
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (entity.Cart, error) {
	return s.read(ctx, sessionID)
}

func (s *cartService) AddToCart(ctx context.Context, sessionID string, product entity.Product, quantity int) (entity.Cart, error) {
	if !product.Available || quantity <= 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Ignoring add to cart",
			slog.String("sku", product.SKU),
			slog.Bool("available", product.Available),
			slog.Int("quantity", quantity),
		)

		return s.read(ctx, sessionID)
	}

	return s.dispatch(ctx, sessionID, cart.AddItem{Product: product, Quantity: quantity, At: s.clock.Now()})
}

func (s *cartService) RemoveFromCart(ctx context.Context, sessionID, sku string) (entity.Cart, error) {
	return s.dispatch(ctx, sessionID, cart.RemoveItem{SKU: sku, At: s.clock.Now()})
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, sku string, quantity int) (entity.Cart, error) {
	return s.dispatch(ctx, sessionID, cart.UpdateQuantity{SKU: sku, Quantity: quantity, At: s.clock.Now()})
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (entity.Cart, error) {
	return s.dispatch(ctx, sessionID, cart.ClearCart{At: s.clock.Now()})
}

func (s *cartService) GetCartItemCount(ctx context.Context, sessionID string) (int, error) {
	current, err := s.read(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	return current.TotalItems, nil
}

func (s *cartService) GetCartTotal(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	current, err := s.read(ctx, sessionID)
	if err != nil {
		return decimal.Zero, err
	}

	return current.TotalPrice, nil
}

func (s *cartService) GetDiscountedTotal(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	current, err := s.read(ctx, sessionID)
	if err != nil {
		return decimal.Zero, err
	}

	return pricing.DiscountedTotal(current, s.discounts.ListDiscounts()), nil
}

func (s *cartService) GetItemDiscountedPrice(item entity.CartItem) decimal.Decimal {
	return pricing.ResolvePrice(item, s.discounts.ListDiscounts())
}

func (s *cartService) IsInCart(ctx context.Context, sessionID, sku string) (bool, error) {
	current, err := s.read(ctx, sessionID)
	if err != nil {
		return false, err
	}

	return current.Contains(sku), nil
}

func (s *cartService) GetCartItem(ctx context.Context, sessionID, sku string) (entity.CartItem, error) {
	current, err := s.read(ctx, sessionID)
	if err != nil {
		return entity.CartItem{}, err
	}

	item, ok := current.FindItem(sku)
	if !ok {
		return entity.CartItem{}, domainerrors.ErrCartItemNotFound.WithDetails("sku " + sku)
	}

	return item, nil
}

func (s *cartService) GetSummary(ctx context.Context, sessionID string) (pricing.Summary, error) {
	current, err := s.read(ctx, sessionID)
	if err != nil {
		return pricing.Summary{}, err
	}

	return pricing.Summarize(current, s.discounts.ListDiscounts()), nil
}

func (s *cartService) read(ctx context.Context, sessionID string) (entity.Cart, error) {
	store, release, err := s.sessions.Acquire(ctx, sessionID)
	if err != nil {
		return entity.Cart{}, err
	}
	defer release()

	return store.Snapshot(), nil
}

func (s *cartService) dispatch(ctx context.Context, sessionID string, action cart.Action) (entity.Cart, error) {
	store, release, err := s.sessions.Acquire(ctx, sessionID)
	if err != nil {
		return entity.Cart{}, err
	}
	defer release()

	return store.Dispatch(ctx, action), nil
}

// eventObserver publishes every change of the session in the background.
func (s *cartService) eventObserver(sessionID string) Observer {
	return func(ctx context.Context, change Change) {
		event := &service.CartEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			EventID:    uuid.NewString(),
			SessionID:  sessionID,
			Action:     string(change.Action.Type()),
			ProductSKU: cart.TargetSKU(change.Action),
			TotalItems: change.Current.TotalItems,
			TotalPrice: change.Current.TotalPrice,
			OccurredAt: change.Current.UpdatedAt,
		}
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		publishCtx := context.WithoutCancel(ctx)

		s.inflight.Add(1)
		go func() {
			defer s.inflight.Done()

			ctx, cancel := context.WithTimeout(publishCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := s.publisher.PublishCartEvent(ctx, event); err != nil {
				logger.Warn("Failed to publish cart event",
					slog.String("event_id", event.EventID),
					slog.String("action", event.Action),
					slog.Any("error", err),
				)
			}
		}()
	}
}

// waitEvents blocks until in-flight publishes finish or ctx expires.
func (s *cartService) waitEvents(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("Timed out waiting for cart events to publish", slog.Any("error", ctx.Err()))
	}
}
