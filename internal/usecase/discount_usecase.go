package usecase

import (
	"context"

	"hafood/internal/domain/entity"
)

// DiscountUsecase exposes the quantity-tier discount catalog
type DiscountUsecase interface {
	// ListDiscounts returns the current catalog. It is empty until the first load succeeds.
	ListDiscounts() []entity.Discount

	// Loaded reports whether a load has succeeded at least once
	Loaded() bool

	// RefreshDiscounts reloads the catalog from its source. On failure the previous catalog is kept.
	RefreshDiscounts(ctx context.Context) ([]entity.Discount, error)
}
