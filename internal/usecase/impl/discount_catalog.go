package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"hafood/config"
	"hafood/internal/domain/entity"
	domainerrors "hafood/internal/domain/errors"
	"hafood/internal/domain/repository"
	"hafood/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "discounts"

type discountCatalog struct {
	repo    repository.DiscountRepository
	logger  *slog.Logger
	timeout time.Duration

	current atomic.Pointer[[]entity.Discount]
	loaded  atomic.Bool
	group   singleflight.Group
}

// DiscountCatalogParams holds dependencies for the discount catalog, injected by Fx
type DiscountCatalogParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Repo   repository.DiscountRepository
}

// NewDiscountCatalog creates the catalog and starts the first load in the background on start.
// Until that load resolves the catalog is empty and prices are undiscounted.
func NewDiscountCatalog(params DiscountCatalogParams) usecase.DiscountUsecase {
	catalog := newDiscountCatalog(params.Repo, params.Logger, params.Config.Discounts.Timeout)

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				_, _ = catalog.RefreshDiscounts(context.Background())
			}()

			return nil
		},
	})

	return catalog
}

func newDiscountCatalog(repo repository.DiscountRepository, logger *slog.Logger, timeout time.Duration) *discountCatalog {
	catalog := &discountCatalog{
		repo:    repo,
		logger:  logger,
		timeout: timeout,
	}
	empty := []entity.Discount{}
	catalog.current.Store(&empty)

	return catalog
}

func (c *discountCatalog) ListDiscounts() []entity.Discount {
	return slices.Clone(*c.current.Load())
}

func (c *discountCatalog) Loaded() bool {
	return c.loaded.Load()
}

// RefreshDiscounts reloads the catalog. Concurrent callers share a single fetch.
func (c *discountCatalog) RefreshDiscounts(ctx context.Context) ([]entity.Discount, error) {
	result := c.group.DoChan(refreshKey, func() (any, error) {
		// A caller going away must not abort the fetch the others are waiting on.
		fetchCtx := context.WithoutCancel(ctx)
		if c.timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(fetchCtx, c.timeout)
			defer cancel()
		}

		return c.load(fetchCtx)
	})

	select {
	case res := <-result:
		if res.Err != nil {
			return c.ListDiscounts(), res.Err
		}

		discounts, _ := res.Val.([]entity.Discount)

		return slices.Clone(discounts), nil
	case <-ctx.Done():
		return c.ListDiscounts(), ctx.Err()
	}
}

func (c *discountCatalog) load(ctx context.Context) ([]entity.Discount, error) {
	fetched, err := c.repo.FindAll(ctx)
	if err != nil {
		c.logger.Error("Failed to load discount catalog, keeping previous catalog",
			slog.Any("error", err),
			slog.Int("kept", len(c.ListDiscounts())),
		)

		return nil, domainerrors.ErrDiscountSourceUnavailable.WrapMessage(err.Error())
	}

	valid := make([]entity.Discount, 0, len(fetched))
	for _, discount := range fetched {
		if err := discount.Validate(); err != nil {
			c.logger.Warn("Dropping invalid discount", slog.String("discount_id", discount.ID), slog.Any("error", err))

			continue
		}
		valid = append(valid, discount)
	}

	c.current.Store(&valid)
	c.loaded.Store(true)

	c.logger.Info("Discount catalog loaded",
		slog.Int("discounts", len(valid)),
		slog.Int("dropped", len(fetched)-len(valid)),
	)

	return valid, nil
}
