package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CartEvent describes a cart mutation, published for asynchronous consumers such as the activity worker
type CartEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	EventID    string          `json:"event_id"`
	SessionID  string          `json:"session_id"`
	Action     string          `json:"action"`
	ProductSKU string          `json:"product_sku,omitempty"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCartEvent publishes a cart event for async processing
	PublishCartEvent(ctx context.Context, event *CartEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
