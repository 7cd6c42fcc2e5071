package usecase

import (
	"context"

	"hafood/internal/domain/entity"
	"hafood/internal/domain/service"
)

// CartActivityUsecase records cart events delivered to the activity worker
type CartActivityUsecase interface {
	// RecordCartEvent stores the event. Redelivered events are acknowledged without a second row.
	RecordCartEvent(ctx context.Context, event *service.CartEvent) (*entity.CartActivity, error)

	// ListSessionActivity returns the latest activities of a session, newest first
	ListSessionActivity(ctx context.Context, sessionID string, limit int) ([]*entity.CartActivity, error)
}
