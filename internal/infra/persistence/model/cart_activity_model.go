package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartActivityModel is the GORM-specific struct for the 'cart_activities' table.
type CartActivityModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EventID    string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	SessionID  string          `gorm:"type:varchar(64);not null;index:idx_cart_activities_session_occurred,priority:1"`
	Action     string          `gorm:"type:varchar(32);not null"`
	ProductSKU string          `gorm:"type:varchar(64)"`
	TotalItems int             `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	OccurredAt time.Time       `gorm:"not null;index:idx_cart_activities_session_occurred,priority:2"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartActivityModel) TableName() string {
	return "cart_activities"
}
