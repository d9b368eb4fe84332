package command

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

// CreateConsumableCommand represents the command to create a consumable type.
// Optional fields carry the original schema defaults when absent.
type CreateConsumableCommand struct {
	CategoryID       uint
	Name             *string
	Unit             *string
	DefaultUsageRate *float64
	UsageRatePeriod  *string
	MinStockLevel    *float64
	Notes            *string
}

// CreateConsumableHandler handles consumable creation
type CreateConsumableHandler struct {
	repo domain.PantryRepository
}

// NewCreateConsumableHandler creates a new create consumable handler
func NewCreateConsumableHandler(repo domain.PantryRepository) *CreateConsumableHandler {
	return &CreateConsumableHandler{repo: repo}
}

// Handle executes the create consumable command. The inventory row is created
// with the type in one transaction, starting at zero quantity.
func (h *CreateConsumableHandler) Handle(cmd CreateConsumableCommand) (*domain.ConsumableType, error) {
	ct, err := buildConsumable(cmd)
	if err != nil {
		return nil, err
	}

	if err := h.repo.CreateConsumable(ct); err != nil {
		return nil, err
	}
	return ct, nil
}

// buildConsumable validates every field and applies defaults. Shared with the
// update path, which enforces the same rules.
func buildConsumable(cmd CreateConsumableCommand) (*domain.ConsumableType, error) {
	categoryID, err := validation.ID("category_id", cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	name, err := validation.String("name", cmd.Name, true)
	if err != nil {
		return nil, err
	}
	unit, err := validation.String("unit", cmd.Unit, false)
	if err != nil {
		return nil, err
	}
	if unit == "" {
		unit = "units"
	}
	rate, err := validation.Number("default_usage_rate", cmd.DefaultUsageRate, false, false)
	if err != nil {
		return nil, err
	}
	period, err := validation.Period("usage_rate_period", cmd.UsageRatePeriod)
	if err != nil {
		return nil, err
	}
	minStock, err := validation.Number("min_stock_level", cmd.MinStockLevel, false, true)
	if err != nil {
		return nil, err
	}
	notes, err := validation.String("notes", cmd.Notes, false)
	if err != nil {
		return nil, err
	}

	ct := &domain.ConsumableType{
		CategoryID:       categoryID,
		Name:             name,
		Unit:             unit,
		DefaultUsageRate: 1.0,
		UsageRatePeriod:  period,
		MinStockLevel:    1.0,
		Notes:            notes,
	}
	if rate != nil {
		ct.DefaultUsageRate = *rate
	}
	if minStock != nil {
		ct.MinStockLevel = *minStock
	}
	return ct, nil
}
