// Package cart holds the cart state machine: actions and the pure reducer applying them.
package cart

import (
	"time"

	"hafood/internal/domain/entity"
)

// ActionType names a cart transition.
type ActionType string

const (
	ActionAddItem        ActionType = "ADD_ITEM"
	ActionRemoveItem     ActionType = "REMOVE_ITEM"
	ActionUpdateQuantity ActionType = "UPDATE_QUANTITY"
	ActionClearCart      ActionType = "CLEAR_CART"
	ActionLoadCart       ActionType = "LOAD_CART"
)

// Action is a cart transition understood by Reduce.
type Action interface {
	Type() ActionType
}

// AddItem adds quantity units of product, merging with an existing line of the same SKU.
type AddItem struct {
	Product  entity.Product
	Quantity int
	At       time.Time
}

// RemoveItem drops the line with the given SKU.
type RemoveItem struct {
	SKU string
	At  time.Time
}

// UpdateQuantity sets the quantity of the line with the given SKU. Non-positive quantities remove the line.
type UpdateQuantity struct {
	SKU      string
	Quantity int
	At       time.Time
}

// ClearCart empties the cart.
type ClearCart struct {
	At time.Time
}

// LoadCart replaces the state with a previously persisted snapshot.
type LoadCart struct {
	Snapshot entity.Cart
}

func (AddItem) Type() ActionType        { return ActionAddItem }
func (RemoveItem) Type() ActionType     { return ActionRemoveItem }
func (UpdateQuantity) Type() ActionType { return ActionUpdateQuantity }
func (ClearCart) Type() ActionType      { return ActionClearCart }
func (LoadCart) Type() ActionType       { return ActionLoadCart }

// TargetSKU returns the SKU an action is about, or an empty string for cart-wide actions.
func TargetSKU(action Action) string {
	switch a := action.(type) {
	case AddItem:
		return a.Product.SKU
	case RemoveItem:
		return a.SKU
	case UpdateQuantity:
		return a.SKU
	default:
		return ""
	}
}
