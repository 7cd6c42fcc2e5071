package entity

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount is a quantity-tier rule: once a line reaches MinQuantity units, its unit price is reduced by DiscountPercent.
type Discount struct {
	ID              string          `json:"id"`
	MinQuantity     int             `json:"minQuantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"` // 0-100
	IsActive        bool            `json:"isActive"`
}

// Qualifies reports whether the rule is active and reached by the given quantity.
func (d Discount) Qualifies(quantity int) bool {
	return d.IsActive && d.MinQuantity <= quantity
}

// Apply returns price reduced by the discount percentage, without rounding.
func (d Discount) Apply(price decimal.Decimal) decimal.Decimal {
	return price.Sub(price.Mul(d.DiscountPercent).Shift(-2))
}

// Validate checks that the rule can be applied to prices.
func (d Discount) Validate() error {
	if d.MinQuantity < 1 {
		return errors.Errorf("discount %s: minQuantity must be at least 1, got %d", d.ID, d.MinQuantity)
	}
	if d.DiscountPercent.IsNegative() || d.DiscountPercent.GreaterThan(hundred) {
		return errors.Errorf("discount %s: discountPercent must be within 0-100, got %s", d.ID, d.DiscountPercent)
	}

	return nil
}
