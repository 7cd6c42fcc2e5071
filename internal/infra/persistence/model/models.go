// Package model contains the GORM table mappings of the persistence layer.
package model

// All lists every table mapping, for migrations and query generation.
func All() []any {
	return []any{
		&CartSnapshotModel{},
		&DiscountModel{},
		&CartActivityModel{},
	}
}
