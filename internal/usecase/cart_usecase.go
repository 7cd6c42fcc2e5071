package usecase

import (
	"context"

	"hafood/internal/domain/entity"
	"hafood/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// CartUsecase is the cart facade. Every operation is scoped to one cart session.
type CartUsecase interface {
	// GetCart returns the current cart snapshot
	GetCart(ctx context.Context, sessionID string) (entity.Cart, error)

	// AddToCart adds a product line or merges into the existing one, clamped to stock.
	// Unavailable products and non-positive quantities are ignored and the cart is returned unchanged.
	AddToCart(ctx context.Context, sessionID string, product entity.Product, quantity int) (entity.Cart, error)

	// RemoveFromCart removes the line for the given SKU
	RemoveFromCart(ctx context.Context, sessionID, sku string) (entity.Cart, error)

	// UpdateQuantity sets the line quantity, clamped to stock. Zero or less removes the line.
	UpdateQuantity(ctx context.Context, sessionID, sku string, quantity int) (entity.Cart, error)

	// ClearCart empties the cart
	ClearCart(ctx context.Context, sessionID string) (entity.Cart, error)

	// GetCartItemCount returns the total number of units in the cart
	GetCartItemCount(ctx context.Context, sessionID string) (int, error)

	// GetCartTotal returns the undiscounted subtotal
	GetCartTotal(ctx context.Context, sessionID string) (decimal.Decimal, error)

	// GetDiscountedTotal returns the subtotal with quantity-tier discounts applied
	GetDiscountedTotal(ctx context.Context, sessionID string) (decimal.Decimal, error)

	// GetItemDiscountedPrice returns the effective unit price of a line under the current catalog
	GetItemDiscountedPrice(item entity.CartItem) decimal.Decimal

	// IsInCart reports whether the cart holds a line for the SKU
	IsInCart(ctx context.Context, sessionID, sku string) (bool, error)

	// GetCartItem returns the line for the SKU or ErrCartItemNotFound
	GetCartItem(ctx context.Context, sessionID, sku string) (entity.CartItem, error)

	// GetSummary returns the cart with per-line pricing and totals from one consistent snapshot
	GetSummary(ctx context.Context, sessionID string) (pricing.Summary, error)
}
