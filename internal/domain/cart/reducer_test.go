package cart

import (
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"hafood/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func createTestProduct(sku string, price int64, stock int) entity.Product {
	return entity.Product{
		SKU:           sku,
		ProductName:   "Product " + sku,
		CurrentPrice:  decimal.NewFromInt(price),
		OriginalPrice: decimal.NewFromInt(price + 10000),
		Available:     true,
		Quantity:      stock,
		Weight:        "500g",
		ProductType:   "frozen",
		Images:        []string{"https://cdn.example.com/" + sku + ".jpg", "https://cdn.example.com/" + sku + "-2.jpg"},
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func assertAggregatesConsistent(t *testing.T, state entity.Cart) {
	t.Helper()

	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range state.Items {
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.CurrentPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	assert.Equal(t, totalItems, state.TotalItems)
	assert.Truef(t, totalPrice.Equal(state.TotalPrice), "totalPrice %s, recomputed %s", state.TotalPrice, totalPrice)
}

func TestReduce_AddItem(t *testing.T) {
	a1 := createTestProduct("A1", 100000, 5)

	t.Run("inserts new line clamped to stock", func(t *testing.T) {
		state := Reduce(entity.EmptyCart(testNow), AddItem{Product: a1, Quantity: 2, At: testNow})

		require.Len(t, state.Items, 1)
		item := state.Items[0]
		assert.Equal(t, "A1", item.ProductSKU)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, 5, item.MaxQuantity)
		assert.Equal(t, "https://cdn.example.com/A1.jpg", item.ImageURL)
		assert.Equal(t, "Product A1", item.ProductName)
		assert.Equal(t, 2, state.TotalItems)
		assertDecimal(t, "200000", state.TotalPrice)
		assert.Equal(t, testNow, state.UpdatedAt)
	})

	t.Run("merges existing line and clamps to max quantity", func(t *testing.T) {
		state := Reduce(entity.EmptyCart(testNow), AddItem{Product: a1, Quantity: 2, At: testNow})
		state = Reduce(state, AddItem{Product: a1, Quantity: 10, At: testNow.Add(time.Minute)})

		require.Len(t, state.Items, 1)
		assert.Equal(t, 5, state.Items[0].Quantity)
		assert.Equal(t, 5, state.TotalItems)
		assertDecimal(t, "500000", state.TotalPrice)
		assert.Equal(t, testNow.Add(time.Minute), state.UpdatedAt)
	})

	t.Run("first add larger than stock is clamped", func(t *testing.T) {
		state := Reduce(entity.EmptyCart(testNow), AddItem{Product: a1, Quantity: 12, At: testNow})

		require.Len(t, state.Items, 1)
		assert.Equal(t, 5, state.Items[0].Quantity)
	})

	t.Run("merge keeps max quantity captured at first add", func(t *testing.T) {
		state := Reduce(entity.EmptyCart(testNow), AddItem{Product: a1, Quantity: 1, At: testNow})
		restocked := a1
		restocked.Quantity = 50
		state = Reduce(state, AddItem{Product: restocked, Quantity: 20, At: testNow})

		assert.Equal(t, 5, state.Items[0].Quantity)
		assert.Equal(t, 5, state.Items[0].MaxQuantity)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		state := entity.EmptyCart(testNow)
		for _, sku := range []string{"C3", "A1", "B2"} {
			state = Reduce(state, AddItem{Product: createTestProduct(sku, 1000, 10), Quantity: 1, At: testNow})
		}
		state = Reduce(state, AddItem{Product: createTestProduct("A1", 1000, 10), Quantity: 1, At: testNow})

		skus := make([]string, 0, len(state.Items))
		for _, item := range state.Items {
			skus = append(skus, item.ProductSKU)
		}
		assert.Equal(t, []string{"C3", "A1", "B2"}, skus)
	})

	t.Run("ignores invalid input", func(t *testing.T) {
		start := Reduce(entity.EmptyCart(testNow), AddItem{Product: a1, Quantity: 1, At: testNow})
		unavailable := createTestProduct("B2", 5000, 5)
		unavailable.Available = false
		outOfStock := createTestProduct("C3", 5000, 0)

		later := testNow.Add(time.Hour)
		assert.Equal(t, start, Reduce(start, AddItem{Product: a1, Quantity: 0, At: later}))
		assert.Equal(t, start, Reduce(start, AddItem{Product: a1, Quantity: -3, At: later}))
		assert.Equal(t, start, Reduce(start, AddItem{Product: unavailable, Quantity: 1, At: later}))
		assert.Equal(t, start, Reduce(start, AddItem{Product: outOfStock, Quantity: 1, At: later}))
	})

	t.Run("does not mutate previous state", func(t *testing.T) {
		first := Reduce(entity.EmptyCart(testNow), AddItem{Product: a1, Quantity: 1, At: testNow})
		_ = Reduce(first, AddItem{Product: a1, Quantity: 2, At: testNow})

		assert.Equal(t, 1, first.Items[0].Quantity)
		assert.Equal(t, 1, first.TotalItems)
	})
}

func TestReduce_RemoveItem(t *testing.T) {
	state := entity.EmptyCart(testNow)
	state = Reduce(state, AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 2, At: testNow})
	state = Reduce(state, AddItem{Product: createTestProduct("B2", 25000, 9), Quantity: 3, At: testNow})

	t.Run("removes matching line", func(t *testing.T) {
		next := Reduce(state, RemoveItem{SKU: "A1", At: testNow})

		require.Len(t, next.Items, 1)
		assert.Equal(t, "B2", next.Items[0].ProductSKU)
		assert.Equal(t, 3, next.TotalItems)
		assertDecimal(t, "75000", next.TotalPrice)
		assert.Len(t, state.Items, 2)
	})

	t.Run("unknown sku leaves items untouched", func(t *testing.T) {
		next := Reduce(state, RemoveItem{SKU: "ZZ", At: testNow})

		assert.Equal(t, state.Items, next.Items)
		assertAggregatesConsistent(t, next)
	})
}

func TestReduce_UpdateQuantity(t *testing.T) {
	state := entity.EmptyCart(testNow)
	state = Reduce(state, AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 2, At: testNow})
	state = Reduce(state, AddItem{Product: createTestProduct("B2", 25000, 9), Quantity: 3, At: testNow})

	t.Run("sets quantity", func(t *testing.T) {
		next := Reduce(state, UpdateQuantity{SKU: "B2", Quantity: 7, At: testNow})

		assert.Equal(t, 7, next.Items[1].Quantity)
		assert.Equal(t, 9, next.TotalItems)
		assertDecimal(t, "375000", next.TotalPrice)
	})

	t.Run("clamps to max quantity", func(t *testing.T) {
		next := Reduce(state, UpdateQuantity{SKU: "A1", Quantity: 99, At: testNow})

		assert.Equal(t, 5, next.Items[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		next := Reduce(state, UpdateQuantity{SKU: "A1", Quantity: 0, At: testNow})

		require.Len(t, next.Items, 1)
		assert.Equal(t, "B2", next.Items[0].ProductSKU)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		next := Reduce(state, UpdateQuantity{SKU: "B2", Quantity: -1, At: testNow})

		require.Len(t, next.Items, 1)
		assert.Equal(t, "A1", next.Items[0].ProductSKU)
	})

	t.Run("unknown sku is a no-op", func(t *testing.T) {
		next := Reduce(state, UpdateQuantity{SKU: "ZZ", Quantity: 4, At: testNow})

		assert.Equal(t, state.Items, next.Items)
	})
}

func TestReduce_ClearCart(t *testing.T) {
	state := entity.EmptyCart(testNow)
	for _, sku := range []string{"A1", "B2", "C3"} {
		state = Reduce(state, AddItem{Product: createTestProduct(sku, 12000, 4), Quantity: 2, At: testNow})
	}
	require.Len(t, state.Items, 3)

	cleared := Reduce(state, ClearCart{At: testNow.Add(time.Hour)})

	assert.Empty(t, cleared.Items)
	assert.NotNil(t, cleared.Items)
	assert.Zero(t, cleared.TotalItems)
	assertDecimal(t, "0", cleared.TotalPrice)
	assert.Equal(t, testNow.Add(time.Hour), cleared.UpdatedAt)
}

func TestReduce_LoadCart(t *testing.T) {
	t.Run("replaces state wholesale", func(t *testing.T) {
		snapshot := entity.Cart{
			Items: []entity.CartItem{
				entity.NewCartItem(createTestProduct("A1", 100000, 5), 3),
			},
			TotalItems: 3,
			TotalPrice: decimal.NewFromInt(300000),
			UpdatedAt:  testNow,
		}

		current := Reduce(entity.EmptyCart(testNow), AddItem{Product: createTestProduct("B2", 1000, 2), Quantity: 1, At: testNow})
		loaded := Reduce(current, LoadCart{Snapshot: snapshot})

		assert.Equal(t, snapshot, loaded)

		loaded.Items[0].Quantity = 1
		assert.Equal(t, 3, snapshot.Items[0].Quantity, "loaded state must not alias the snapshot")
	})

	t.Run("nil items become empty", func(t *testing.T) {
		loaded := Reduce(entity.EmptyCart(testNow), LoadCart{Snapshot: entity.Cart{UpdatedAt: testNow}})

		assert.NotNil(t, loaded.Items)
		assert.Empty(t, loaded.Items)
	})
}

func TestReduce_UnknownActionIsNoop(t *testing.T) {
	state := Reduce(entity.EmptyCart(testNow), AddItem{Product: createTestProduct("A1", 1000, 2), Quantity: 1, At: testNow})

	assert.Equal(t, state, Reduce(state, &AddItem{}))
}

func TestReduce_UpdateQuantityIsIdempotent(t *testing.T) {
	state := entity.EmptyCart(testNow)
	state = Reduce(state, AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 2, At: testNow})

	for _, quantity := range []int{-2, 0, 1, 3, 5, 40} {
		action := UpdateQuantity{SKU: "A1", Quantity: quantity, At: testNow}
		once := Reduce(state, action)
		twice := Reduce(once, action)

		assert.Equal(t, once, twice, "quantity %d", quantity)
	}
}

func TestReduce_UpdateToZeroEqualsRemove(t *testing.T) {
	state := entity.EmptyCart(testNow)
	state = Reduce(state, AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 2, At: testNow})
	state = Reduce(state, AddItem{Product: createTestProduct("B2", 3000, 5), Quantity: 4, At: testNow})

	viaUpdate := Reduce(state, UpdateQuantity{SKU: "A1", Quantity: 0, At: testNow})
	viaRemove := Reduce(state, RemoveItem{SKU: "A1", At: testNow})

	assert.Equal(t, viaRemove, viaUpdate)
}

func TestReduce_RoundTripThroughJSON(t *testing.T) {
	state := entity.EmptyCart(testNow)
	state = Reduce(state, AddItem{Product: createTestProduct("A1", 100000, 5), Quantity: 2, At: testNow})

	fractional := createTestProduct("B2", 0, 9)
	fractional.CurrentPrice = decimal.RequireFromString("19999.95")
	state = Reduce(state, AddItem{Product: fractional, Quantity: 3, At: testNow})

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded entity.Cart
	require.NoError(t, json.Unmarshal(data, &decoded))
	loaded := Reduce(entity.EmptyCart(time.Time{}), LoadCart{Snapshot: decoded})

	require.Len(t, loaded.Items, len(state.Items))
	for idx := range state.Items {
		want, got := state.Items[idx], loaded.Items[idx]
		assert.Equal(t, want.ProductSKU, got.ProductSKU)
		assert.Equal(t, want.Quantity, got.Quantity)
		assert.Equal(t, want.MaxQuantity, got.MaxQuantity)
		assert.True(t, want.CurrentPrice.Equal(got.CurrentPrice))
		assert.True(t, want.OriginalPrice.Equal(got.OriginalPrice))
	}
	assert.Equal(t, state.TotalItems, loaded.TotalItems)
	assert.True(t, state.TotalPrice.Equal(loaded.TotalPrice))
	assert.True(t, state.UpdatedAt.Equal(loaded.UpdatedAt))
}

func TestReduce_RandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	catalog := []entity.Product{
		createTestProduct("A1", 100000, 5),
		createTestProduct("B2", 25500, 1),
		createTestProduct("C3", 9990, 12),
		createTestProduct("D4", 150, 3),
	}

	state := entity.EmptyCart(testNow)
	for step := range 2000 {
		at := testNow.Add(time.Duration(step) * time.Second)
		product := catalog[rng.IntN(len(catalog))]

		var action Action
		switch rng.IntN(5) {
		case 0, 1:
			action = AddItem{Product: product, Quantity: rng.IntN(15) - 2, At: at}
		case 2:
			action = UpdateQuantity{SKU: product.SKU, Quantity: rng.IntN(20) - 3, At: at}
		case 3:
			action = RemoveItem{SKU: product.SKU, At: at}
		default:
			if rng.IntN(10) == 0 {
				action = ClearCart{At: at}
			} else {
				action = UpdateQuantity{SKU: product.SKU, Quantity: rng.IntN(6), At: at}
			}
		}

		state = Reduce(state, action)

		seen := make(map[string]bool, len(state.Items))
		for _, item := range state.Items {
			require.Falsef(t, seen[item.ProductSKU], "duplicate sku %s at step %d", item.ProductSKU, step)
			seen[item.ProductSKU] = true
			require.GreaterOrEqual(t, item.Quantity, 1)
			require.LessOrEqual(t, item.Quantity, item.MaxQuantity)
		}
		assertAggregatesConsistent(t, state)
	}
}

func TestTargetSKU(t *testing.T) {
	assert.Equal(t, "A1", TargetSKU(AddItem{Product: entity.Product{SKU: "A1"}}))
	assert.Equal(t, "B2", TargetSKU(RemoveItem{SKU: "B2"}))
	assert.Equal(t, "C3", TargetSKU(UpdateQuantity{SKU: "C3"}))
	assert.Empty(t, TargetSKU(ClearCart{}))
	assert.Empty(t, TargetSKU(LoadCart{}))
}
