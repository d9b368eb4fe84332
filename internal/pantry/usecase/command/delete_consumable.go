package command

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

// DeleteConsumableCommand represents the command to delete a consumable type
type DeleteConsumableCommand struct {
	ID uint
}

// DeleteConsumableHandler handles consumable deletion
type DeleteConsumableHandler struct {
	repo domain.PantryRepository
}

// NewDeleteConsumableHandler creates a new delete consumable handler
func NewDeleteConsumableHandler(repo domain.PantryRepository) *DeleteConsumableHandler {
	return &DeleteConsumableHandler{repo: repo}
}

// Handle executes the delete consumable command. The inventory, purchase and
// usage rows go with the type; deleting an absent id succeeds.
func (h *DeleteConsumableHandler) Handle(cmd DeleteConsumableCommand) error {
	id, err := validation.ID("id", cmd.ID)
	if err != nil {
		return err
	}
	return h.repo.DeleteConsumable(id)
}
