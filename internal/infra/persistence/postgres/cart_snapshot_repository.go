package postgres

import (
	"context"
	"time"

	domainerrors "hafood/internal/domain/errors"
	"hafood/internal/domain/repository"
	"hafood/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartSnapshotRepository implements the repository.CartSnapshotRepository interface.
type cartSnapshotRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCartSnapshotRepository is the constructor for cartSnapshotRepository.
func NewCartSnapshotRepository(db *gorm.DB) repository.CartSnapshotRepository {
	return &cartSnapshotRepository{
		db:  db,
		now: time.Now,
	}
}

// Load returns the payload stored under key.
func (repo *cartSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var snapshotM model.CartSnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("storage_key = ?", key).
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart snapshot")
	}

	return []byte(snapshotM.Payload), nil
}

// Save upserts the payload under key.
func (repo *cartSnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	snapshotM := &model.CartSnapshotModel{
		StorageKey: key,
		Payload:    string(data),
		UpdatedAt:  repo.now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(snapshotM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart snapshot")
	}

	return nil
}

// Delete removes the snapshot under key.
func (repo *cartSnapshotRepository) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("storage_key = ?", key).
		Delete(&model.CartSnapshotModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart snapshot")
	}

	return nil
}
