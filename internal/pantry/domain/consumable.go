package domain

import "time"

// Usage rate periods
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// ConsumableType represents a trackable household item, independent of its
// current stock level.
type ConsumableType struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	CategoryID       uint      `json:"category_id" gorm:"not null;uniqueIndex:idx_category_name"`
	Name             string    `json:"name" gorm:"not null;uniqueIndex:idx_category_name"`
	Unit             string    `json:"unit" gorm:"not null;default:'units'"`
	DefaultUsageRate float64   `json:"default_usage_rate" gorm:"not null;default:1.0"`
	UsageRatePeriod  string    `json:"usage_rate_period" gorm:"not null;default:'week'"`
	MinStockLevel    float64   `json:"min_stock_level" gorm:"not null;default:1.0"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName specifies the table name
func (ConsumableType) TableName() string {
	return "consumable_types"
}

// ConsumableWithInventory is a ConsumableType joined with its category and
// inventory row for list responses.
type ConsumableWithInventory struct {
	ConsumableType
	CategoryName    string   `json:"category_name"`
	CategoryIcon    string   `json:"category_icon"`
	CurrentQuantity float64  `json:"current_quantity"`
	CustomUsageRate *float64 `json:"custom_usage_rate"`
}
