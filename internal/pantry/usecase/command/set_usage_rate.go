package command

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

// SetUsageRateCommand represents the command to set or clear the custom
// usage rate override. A nil rate clears the override, falling back to the
// consumable's default.
type SetUsageRateCommand struct {
	ConsumableTypeID uint
	UsageRate        *float64
}

// SetUsageRateHandler handles usage rate overrides
type SetUsageRateHandler struct {
	repo domain.PantryRepository
}

// NewSetUsageRateHandler creates a new set usage rate handler
func NewSetUsageRateHandler(repo domain.PantryRepository) *SetUsageRateHandler {
	return &SetUsageRateHandler{repo: repo}
}

// Handle executes the set usage rate command
func (h *SetUsageRateHandler) Handle(cmd SetUsageRateCommand) error {
	id, err := validation.ID("consumable_type_id", cmd.ConsumableTypeID)
	if err != nil {
		return err
	}
	rate, err := validation.Number("usage_rate", cmd.UsageRate, false, false)
	if err != nil {
		return err
	}
	return h.repo.SetUsageRate(id, rate)
}
