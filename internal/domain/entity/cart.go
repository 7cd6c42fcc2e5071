package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of the cart. Display fields and prices are copied from the product at add time.
type CartItem struct {
	ProductSKU    string          `json:"productSKU"`
	ProductName   string          `json:"productName"`
	ProductType   string          `json:"productType"`
	Weight        string          `json:"weight"`
	ImageURL      string          `json:"imageUrl"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Quantity      int             `json:"quantity"`    // 1 <= Quantity <= MaxQuantity
	MaxQuantity   int             `json:"maxQuantity"` // Stock ceiling captured at add time.
	Available     bool            `json:"available"`
}

// NewCartItem captures a product snapshot as a cart line with the given quantity.
func NewCartItem(product Product, quantity int) CartItem {
	return CartItem{
		ProductSKU:    product.SKU,
		ProductName:   product.ProductName,
		ProductType:   product.ProductType,
		Weight:        product.Weight,
		ImageURL:      product.PrimaryImage(),
		CurrentPrice:  product.CurrentPrice,
		OriginalPrice: product.OriginalPrice,
		Quantity:      quantity,
		MaxQuantity:   product.Quantity,
		Available:     product.Available,
	}
}

// LineTotal returns the undiscounted total of the line.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.CurrentPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the aggregate root of a customer's shopping cart.
type Cart struct {
	Items      []CartItem      `json:"items"`      // Insertion ordered, one line per SKU.
	TotalItems int             `json:"totalItems"` // Sum of line quantities.
	TotalPrice decimal.Decimal `json:"totalPrice"` // Sum of undiscounted line totals.
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// EmptyCart returns a cart with no items, stamped with the given time.
func EmptyCart(at time.Time) Cart {
	return Cart{
		Items:      []CartItem{},
		TotalItems: 0,
		TotalPrice: decimal.Zero,
		UpdatedAt:  at,
	}
}

// FindItem looks up the line for the given SKU.
func (c Cart) FindItem(sku string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductSKU == sku {
			return item, true
		}
	}

	return CartItem{}, false
}

// Contains reports whether the cart has a line for the given SKU.
func (c Cart) Contains(sku string) bool {
	_, ok := c.FindItem(sku)

	return ok
}

// Clone returns a copy of the cart that shares no item storage with the receiver.
func (c Cart) Clone() Cart {
	clone := c
	clone.Items = make([]CartItem, len(c.Items))
	copy(clone.Items, c.Items)

	return clone
}
