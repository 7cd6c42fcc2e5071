package repository

import (
	"context"

	"hafood/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateCartActivity is returned when an event has already been recorded.
var ErrDuplicateCartActivity = errors.New("cart activity already recorded")

// CartActivityRepository records cart events delivered to the activity worker.
type CartActivityRepository interface {
	// Create persists a cart activity. Redelivered events yield ErrDuplicateCartActivity.
	Create(ctx context.Context, activity *entity.CartActivity) error

	// FindBySession returns the most recent activities of a session, newest first.
	FindBySession(ctx context.Context, sessionID string, limit int) ([]*entity.CartActivity, error)
}
