// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Persisted carts and API payloads carry amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a read-only snapshot of a catalog product, supplied when a customer adds it to the cart.
type Product struct {
	SKU           string          `json:"sku"`           // Stock Keeping Unit, unique per product.
	ProductName   string          `json:"productName"`   // Display name.
	CurrentPrice  decimal.Decimal `json:"currentPrice"`  // Selling price per unit.
	OriginalPrice decimal.Decimal `json:"originalPrice"` // List price before markdowns.
	Available     bool            `json:"available"`     // Whether the product can be sold.
	Quantity      int             `json:"quantity"`      // Stock on hand.
	Weight        string          `json:"weight"`        // Display weight, e.g. "500g".
	ProductType   string          `json:"productType"`   // Catalog category of the product.
	Images        []string        `json:"images"`        // Associated image URLs, primary first.
}

// PrimaryImage returns the first image URL of the product, or an empty string.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}
