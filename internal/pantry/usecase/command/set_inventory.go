package command

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

// SetInventoryCommand represents the command to overwrite a consumable's
// current quantity. A non-nil CustomUsageRate also overwrites the override;
// a nil one leaves it untouched.
type SetInventoryCommand struct {
	ConsumableTypeID uint
	CurrentQuantity  *float64
	CustomUsageRate  *float64
}

// SetInventoryHandler handles direct inventory updates
type SetInventoryHandler struct {
	repo domain.PantryRepository
}

// NewSetInventoryHandler creates a new set inventory handler
func NewSetInventoryHandler(repo domain.PantryRepository) *SetInventoryHandler {
	return &SetInventoryHandler{repo: repo}
}

// Handle executes the set inventory command
func (h *SetInventoryHandler) Handle(cmd SetInventoryCommand) error {
	id, err := validation.ID("consumable_type_id", cmd.ConsumableTypeID)
	if err != nil {
		return err
	}
	quantity, err := validation.Number("current_quantity", cmd.CurrentQuantity, true, true)
	if err != nil {
		return err
	}
	rate, err := validation.Number("custom_usage_rate", cmd.CustomUsageRate, false, false)
	if err != nil {
		return err
	}

	return h.repo.SetInventory(id, *quantity, rate, rate != nil)
}
