package catalog

import (
	"context"
	"slices"

	"hafood/config"
	"hafood/internal/domain/entity"
	"hafood/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// staticDiscountRepository serves the discounts declared in configuration.
type staticDiscountRepository struct {
	discounts []entity.Discount
}

// NewStaticDiscountRepository parses the configured entries once.
func NewStaticDiscountRepository(entries []config.StaticDiscount) (repository.DiscountRepository, error) {
	discounts := make([]entity.Discount, 0, len(entries))
	for _, entry := range entries {
		percent, err := decimal.NewFromString(entry.DiscountPercent)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid discountPercent for static discount %s", entry.ID)
		}

		discounts = append(discounts, entity.Discount{
			ID:              entry.ID,
			MinQuantity:     entry.MinQuantity,
			DiscountPercent: percent,
			IsActive:        entry.IsActive,
		})
	}

	return &staticDiscountRepository{discounts: discounts}, nil
}

func (repo *staticDiscountRepository) FindAll(_ context.Context) ([]entity.Discount, error) {
	return slices.Clone(repo.discounts), nil
}
