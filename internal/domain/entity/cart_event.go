package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartActivity is a recorded cart mutation, as consumed by the cart activity worker.
type CartActivity struct {
	ID         uuid.UUID       `json:"id"`
	EventID    string          `json:"eventId"`
	SessionID  string          `json:"sessionId"`
	Action     string          `json:"action"`
	ProductSKU string          `json:"productSku,omitempty"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	OccurredAt time.Time       `json:"occurredAt"`
	CreatedAt  time.Time       `json:"createdAt"`
}
