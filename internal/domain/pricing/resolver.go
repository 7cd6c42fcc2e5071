// Package pricing resolves effective unit prices from quantity-tier discounts.
package pricing

import (
	"hafood/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SelectDiscount returns the tier applicable to quantity: the active rule with the largest MinQuantity
// not above quantity. Rules sharing that MinQuantity are ranked by DiscountPercent, then catalog order.
func SelectDiscount(quantity int, discounts []entity.Discount) (entity.Discount, bool) {
	var (
		best  entity.Discount
		found bool
	)

	for _, discount := range discounts {
		if !discount.Qualifies(quantity) {
			continue
		}

		if !found ||
			discount.MinQuantity > best.MinQuantity ||
			(discount.MinQuantity == best.MinQuantity && discount.DiscountPercent.GreaterThan(best.DiscountPercent)) {
			best = discount
			found = true
		}
	}

	return best, found
}

// ResolvePrice returns the effective unit price of the item under the discount catalog.
func ResolvePrice(item entity.CartItem, discounts []entity.Discount) decimal.Decimal {
	discount, ok := SelectDiscount(item.Quantity, discounts)
	if !ok {
		return item.CurrentPrice
	}

	return discount.Apply(item.CurrentPrice)
}

// DiscountedTotal sums the effective line totals of the cart.
func DiscountedTotal(cart entity.Cart, discounts []entity.Discount) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(ResolvePrice(item, discounts).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

// Line is the priced view of a cart line.
type Line struct {
	Item            entity.CartItem  `json:"item"`
	UnitPrice       decimal.Decimal  `json:"unitPrice"`
	LineTotal       decimal.Decimal  `json:"lineTotal"`
	Savings         decimal.Decimal  `json:"savings"`
	AppliedDiscount *entity.Discount `json:"appliedDiscount,omitempty"`
}

// Summary is the priced view of a cart.
type Summary struct {
	Cart            entity.Cart     `json:"cart"`
	Lines           []Line          `json:"lines"`
	ItemCount       int             `json:"itemCount"`
	Total           decimal.Decimal `json:"total"`
	DiscountedTotal decimal.Decimal `json:"discountedTotal"`
	Savings         decimal.Decimal `json:"savings"`
}

// Summarize prices every line of the cart against the discount catalog.
func Summarize(cart entity.Cart, discounts []entity.Discount) Summary {
	lines := make([]Line, 0, len(cart.Items))
	discounted := decimal.Zero

	for _, item := range cart.Items {
		quantity := decimal.NewFromInt(int64(item.Quantity))
		line := Line{
			Item:      item,
			UnitPrice: item.CurrentPrice,
		}
		if discount, ok := SelectDiscount(item.Quantity, discounts); ok {
			line.UnitPrice = discount.Apply(item.CurrentPrice)
			line.AppliedDiscount = &discount
		}
		line.LineTotal = line.UnitPrice.Mul(quantity)
		line.Savings = item.LineTotal().Sub(line.LineTotal)

		discounted = discounted.Add(line.LineTotal)
		lines = append(lines, line)
	}

	return Summary{
		Cart:            cart,
		Lines:           lines,
		ItemCount:       cart.TotalItems,
		Total:           cart.TotalPrice,
		DiscountedTotal: discounted,
		Savings:         cart.TotalPrice.Sub(discounted),
	}
}
