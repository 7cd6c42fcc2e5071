package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountModel is the GORM-specific struct for the 'discounts' table.
// Rows are maintained by the back-office; this service only reads them.
type DiscountModel struct {
	ID              string          `gorm:"type:varchar(64);primaryKey"`
	MinQuantity     int             `gorm:"not null"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	IsActive        bool            `gorm:"not null;default:true"`
	SortOrder       int             `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}
