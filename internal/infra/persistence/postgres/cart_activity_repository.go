package postgres

import (
	"context"

	"hafood/internal/domain/entity"
	domainerrors "hafood/internal/domain/errors"
	"hafood/internal/domain/repository"
	"hafood/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultActivityLimit = 50

// cartActivityRepository implements the repository.CartActivityRepository interface.
type cartActivityRepository struct {
	db *gorm.DB
}

// NewCartActivityRepository is the constructor for cartActivityRepository.
func NewCartActivityRepository(db *gorm.DB) repository.CartActivityRepository {
	return &cartActivityRepository{
		db: db,
	}
}

// Create persists a new activity. Rows are keyed by event id so Pub/Sub redeliveries are absorbed.
func (repo *cartActivityRepository) Create(ctx context.Context, activity *entity.CartActivity) error {
	if activity.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate cart activity id")
		}
		activity.ID = id
	}

	activityM := fromCartActivityDomain(activity)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(activityM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCartActivity
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create cart activity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateCartActivity
	}

	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// FindBySession retrieves the latest activities of a session.
func (repo *cartActivityRepository) FindBySession(ctx context.Context, sessionID string, limit int) ([]*entity.CartActivity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	var activityModels []*model.CartActivityModel

	if err := repo.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart activities by session")
	}

	activities := make([]*entity.CartActivity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, toCartActivityDomain(activityM))
	}

	return activities, nil
}

// --- Mapper Functions ---

// toCartActivityDomain converts a GORM CartActivityModel to a domain CartActivity entity.
func toCartActivityDomain(data *model.CartActivityModel) *entity.CartActivity {
	if data == nil {
		return nil
	}

	return &entity.CartActivity{
		ID:         data.ID,
		EventID:    data.EventID,
		SessionID:  data.SessionID,
		Action:     data.Action,
		ProductSKU: data.ProductSKU,
		TotalItems: data.TotalItems,
		TotalPrice: data.TotalPrice,
		OccurredAt: data.OccurredAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromCartActivityDomain converts a domain CartActivity entity to a GORM CartActivityModel.
func fromCartActivityDomain(data *entity.CartActivity) *model.CartActivityModel {
	if data == nil {
		return nil
	}

	return &model.CartActivityModel{
		ID:         data.ID,
		EventID:    data.EventID,
		SessionID:  data.SessionID,
		Action:     data.Action,
		ProductSKU: data.ProductSKU,
		TotalItems: data.TotalItems,
		TotalPrice: data.TotalPrice,
		OccurredAt: data.OccurredAt,
		CreatedAt:  data.CreatedAt,
	}
}
