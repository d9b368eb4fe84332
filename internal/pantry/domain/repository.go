package domain

import "time"

// State blob format signature and version for export/import
const (
	StateSignature = "home-inventory-state"
	StateVersion   = 1
)

// StateExport is the full persisted state as a portable blob
type StateExport struct {
	Signature  string    `json:"signature"`
	Version    int       `json:"version"`
	ExportID   string    `json:"export_id"`
	ExportedAt time.Time `json:"exported_at"`

	Categories      []Category       `json:"categories"`
	ConsumableTypes []ConsumableType `json:"consumable_types"`
	Inventory       []Inventory      `json:"inventory"`
	Purchases       []Purchase       `json:"purchases"`
	UsageLogs       []UsageLog       `json:"usage_logs"`
}

// PantryRepository defines the contract for ledger data access. Multi-write
// operations (consumable create with its inventory row, purchase apply and
// reversal, cascading delete, state import) are single transactional units:
// either every statement applies or none does.
type PantryRepository interface {
	// Categories
	ListCategories() ([]Category, error)

	// Consumable types
	CreateConsumable(ct *ConsumableType) error
	FindConsumableByID(id uint) (*ConsumableType, error)
	ListConsumables(categoryID uint) ([]ConsumableWithInventory, error)
	UpdateConsumable(ct *ConsumableType) error
	DeleteConsumable(id uint) error

	// Inventory
	FindInventoryByConsumableID(consumableID uint) (*Inventory, error)
	SetInventory(consumableID uint, quantity float64, customRate *float64, updateRate bool) error
	SetUsageRate(consumableID uint, rate *float64) error

	// Purchases
	CreatePurchase(p *Purchase) error
	FindPurchaseByID(id uint) (*Purchase, error)
	ListPurchases(consumableID uint, limit int) ([]PurchaseWithConsumable, error)
	DeletePurchase(id uint) error

	// Usage log
	CreateUsageLog(u *UsageLog) error
	ListUsageLogs(consumableID uint, limit int) ([]UsageLog, error)

	// Stats
	CountNeedsPurchase() (int64, error)
	CountConsumables() (int64, error)
	CountRecentPurchases(sinceDate string) (int64, error)

	// Backup
	ExportState() (*StateExport, error)
	ImportState(s *StateExport) error
}
