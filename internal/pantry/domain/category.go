package domain

// Category represents a consumable category (seeded at initialization)
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
	Icon string `json:"icon" gorm:"default:'📦'"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}
