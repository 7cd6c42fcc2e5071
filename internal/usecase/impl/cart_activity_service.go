package impl

import (
	"context"
	"log/slog"

	deliverycontext "hafood/internal/delivery/context"
	"hafood/internal/domain/entity"
	domainerrors "hafood/internal/domain/errors"
	"hafood/internal/domain/repository"
	"hafood/internal/domain/service"
	"hafood/internal/errors"
	"hafood/internal/usecase"
)

type cartActivityService struct {
	activityRepo repository.CartActivityRepository
	clock        service.Clock
	logger       *slog.Logger
}

// NewCartActivityService creates a new cart activity service instance
func NewCartActivityService(
	activityRepo repository.CartActivityRepository,
	clock service.Clock,
	logger *slog.Logger,
) usecase.CartActivityUsecase {
	return &cartActivityService{
		activityRepo: activityRepo,
		clock:        clock,
		logger:       logger,
	}
}

// RecordCartEvent stores a cart event delivered by Pub/Sub
func (s *cartActivityService) RecordCartEvent(ctx context.Context, event *service.CartEvent) (*entity.CartActivity, error) {
	if event == nil || event.EventID == "" || event.SessionID == "" || event.Action == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("cart event requires event_id, session_id and action")
	}

	activity := &entity.CartActivity{
		EventID:    event.EventID,
		SessionID:  event.SessionID,
		Action:     event.Action,
		ProductSKU: event.ProductSKU,
		TotalItems: event.TotalItems,
		TotalPrice: event.TotalPrice,
		OccurredAt: event.OccurredAt,
	}
	if activity.OccurredAt.IsZero() {
		activity.OccurredAt = s.clock.Now()
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		if errors.Is(err, repository.ErrDuplicateCartActivity) {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Cart event already recorded",
				slog.String("event_id", event.EventID),
			)

			return activity, nil
		}

		return nil, errors.Wrap(err, "failed to record cart activity")
	}

	return activity, nil
}

// ListSessionActivity returns the latest recorded activity of a session
func (s *cartActivityService) ListSessionActivity(ctx context.Context, sessionID string, limit int) ([]*entity.CartActivity, error) {
	activities, err := s.activityRepo.FindBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart activity")
	}

	return activities, nil
}
