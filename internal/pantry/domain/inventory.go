package domain

import "time"

// Inventory represents the current stock of a consumable. Exactly one row
// exists per ConsumableType; it is created in the same transaction as the
// type itself.
type Inventory struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ConsumableTypeID uint      `json:"consumable_type_id" gorm:"uniqueIndex;not null"`
	CurrentQuantity  float64   `json:"current_quantity" gorm:"not null;default:0"`
	CustomUsageRate  *float64  `json:"custom_usage_rate"`
	LastUpdated      time.Time `json:"last_updated"`
}

// TableName specifies the table name
func (Inventory) TableName() string {
	return "inventory"
}
