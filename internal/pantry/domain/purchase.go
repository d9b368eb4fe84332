package domain

import "time"

// Purchase represents a purchase event. Creating one increments the linked
// inventory quantity; deleting one decrements it back.
type Purchase struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ConsumableTypeID uint      `json:"consumable_type_id" gorm:"not null;index"`
	Quantity         float64   `json:"quantity" gorm:"not null"`
	PurchaseDate     string    `json:"purchase_date" gorm:"not null"` // YYYY-MM-DD
	Price            *float64  `json:"price"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseWithConsumable is a Purchase joined with consumable name and unit
// for list responses.
type PurchaseWithConsumable struct {
	Purchase
	ConsumableName string `json:"consumable_name"`
	Unit           string `json:"unit"`
}
