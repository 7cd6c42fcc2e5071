package cart

import (
	"time"

	"hafood/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Reduce applies action to state and returns the next state. It never mutates state, never fails
// and recomputes the aggregates from the items after every transition.
func Reduce(state entity.Cart, action Action) entity.Cart {
	switch a := action.(type) {
	case AddItem:
		items, ok := addItem(state.Items, a.Product, a.Quantity)
		if !ok {
			return state
		}

		return build(items, a.At)

	case RemoveItem:
		return build(removeItem(state.Items, a.SKU), a.At)

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return build(removeItem(state.Items, a.SKU), a.At)
		}

		return build(updateQuantity(state.Items, a.SKU, a.Quantity), a.At)

	case ClearCart:
		return entity.EmptyCart(a.At)

	case LoadCart:
		// Snapshots are taken as persisted; their totals are not re-derived.
		loaded := a.Snapshot.Clone()
		if loaded.Items == nil {
			loaded.Items = []entity.CartItem{}
		}

		return loaded

	default:
		return state
	}
}

func addItem(items []entity.CartItem, product entity.Product, quantity int) ([]entity.CartItem, bool) {
	if quantity <= 0 || !product.Available {
		return nil, false
	}

	next := make([]entity.CartItem, len(items), len(items)+1)
	copy(next, items)

	for idx := range next {
		if next[idx].ProductSKU == product.SKU {
			next[idx].Quantity = min(next[idx].Quantity+quantity, next[idx].MaxQuantity)

			return next, true
		}
	}

	clamped := min(quantity, product.Quantity)
	if clamped < 1 {
		return nil, false
	}

	return append(next, entity.NewCartItem(product, clamped)), true
}

func removeItem(items []entity.CartItem, sku string) []entity.CartItem {
	next := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductSKU != sku {
			next = append(next, item)
		}
	}

	return next
}

func updateQuantity(items []entity.CartItem, sku string, quantity int) []entity.CartItem {
	next := make([]entity.CartItem, len(items))
	copy(next, items)

	for idx := range next {
		if next[idx].ProductSKU == sku {
			next[idx].Quantity = min(quantity, next[idx].MaxQuantity)
		}
	}

	return next
}

func build(items []entity.CartItem, at time.Time) entity.Cart {
	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.LineTotal())
	}

	return entity.Cart{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
		UpdatedAt:  at,
	}
}
