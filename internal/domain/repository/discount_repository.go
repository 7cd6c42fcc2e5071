package repository

import (
	"context"

	"hafood/internal/domain/entity"
)

// DiscountRepository reads the quantity-tier discount catalog from its backing source.
type DiscountRepository interface {
	// FindAll returns every discount rule, active or not, in catalog order.
	FindAll(ctx context.Context) ([]entity.Discount, error)
}
