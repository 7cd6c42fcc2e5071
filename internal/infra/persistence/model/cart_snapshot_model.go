package model

import "time"

// CartSnapshotModel is the GORM-specific struct for the 'cart_snapshots' table.
// Each row holds the serialized cart stored under one storage key.
type CartSnapshotModel struct {
	StorageKey string `gorm:"type:varchar(255);primaryKey"`
	Payload    string `gorm:"type:jsonb;not null"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartSnapshotModel) TableName() string {
	return "cart_snapshots"
}
