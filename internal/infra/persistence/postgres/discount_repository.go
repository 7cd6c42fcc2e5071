package postgres

import (
	"context"

	"hafood/internal/domain/entity"
	"hafood/internal/domain/repository"
	"hafood/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// discountRepository implements the repository.DiscountRepository interface.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{
		db: db,
	}
}

// FindAll returns every discount row in catalog order.
func (repo *discountRepository) FindAll(ctx context.Context) ([]entity.Discount, error) {
	var discountModels []*model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("min_quantity ASC").
		Order("id ASC").
		Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find discounts")
	}

	discounts := make([]entity.Discount, 0, len(discountModels))
	for _, discountM := range discountModels {
		discounts = append(discounts, toDiscountDomain(discountM))
	}

	return discounts, nil
}

// --- Mapper Functions ---

// toDiscountDomain converts a GORM DiscountModel to a domain Discount entity.
func toDiscountDomain(data *model.DiscountModel) entity.Discount {
	return entity.Discount{
		ID:              data.ID,
		MinQuantity:     data.MinQuantity,
		DiscountPercent: data.DiscountPercent,
		IsActive:        data.IsActive,
	}
}
