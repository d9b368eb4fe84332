package command

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

// UpdateConsumableCommand represents the command to update a consumable type
type UpdateConsumableCommand struct {
	ID uint
	CreateConsumableCommand
}

// UpdateConsumableHandler handles consumable updates
type UpdateConsumableHandler struct {
	repo domain.PantryRepository
}

// NewUpdateConsumableHandler creates a new update consumable handler
func NewUpdateConsumableHandler(repo domain.PantryRepository) *UpdateConsumableHandler {
	return &UpdateConsumableHandler{repo: repo}
}

// Handle executes the update consumable command
func (h *UpdateConsumableHandler) Handle(cmd UpdateConsumableCommand) error {
	id, err := validation.ID("id", cmd.ID)
	if err != nil {
		return err
	}

	ct, err := buildConsumable(cmd.CreateConsumableCommand)
	if err != nil {
		return err
	}
	ct.ID = id

	return h.repo.UpdateConsumable(ct)
}
