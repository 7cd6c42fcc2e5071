package catalog

import (
	"context"
	"testing"

	"hafood/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDiscountRepository(t *testing.T) {
	t.Run("parses configured entries", func(t *testing.T) {
		repo, err := NewStaticDiscountRepository([]config.StaticDiscount{
			{ID: "tier-5", MinQuantity: 5, DiscountPercent: "10", IsActive: true},
			{ID: "tier-10", MinQuantity: 10, DiscountPercent: "12.5", IsActive: false},
		})
		require.NoError(t, err)

		discounts, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, discounts, 2)
		assert.True(t, discounts[0].DiscountPercent.Equal(decimal.NewFromInt(10)))
		assert.True(t, discounts[1].DiscountPercent.Equal(decimal.RequireFromString("12.5")))

		discounts[0].ID = "mutated"
		again, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tier-5", again[0].ID)
	})

	t.Run("rejects unparsable percent", func(t *testing.T) {
		_, err := NewStaticDiscountRepository([]config.StaticDiscount{
			{ID: "bad", MinQuantity: 1, DiscountPercent: "ten"},
		})

		assert.Error(t, err)
	})
}
