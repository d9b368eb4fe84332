package domain

import "time"

// UsageLog records actual consumption. Entries are kept for future rate
// tuning; the restock estimator does not read them.
type UsageLog struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ConsumableTypeID uint      `json:"consumable_type_id" gorm:"not null;index"`
	QuantityUsed     float64   `json:"quantity_used" gorm:"not null"`
	UsageDate        string    `json:"usage_date" gorm:"not null"` // YYYY-MM-DD
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName specifies the table name
func (UsageLog) TableName() string {
	return "usage_log"
}
