package command

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

// DeletePurchaseCommand represents the command to reverse a purchase
type DeletePurchaseCommand struct {
	ID uint
}

// DeletePurchaseHandler handles purchase reversal
type DeletePurchaseHandler struct {
	repo domain.PantryRepository
}

// NewDeletePurchaseHandler creates a new delete purchase handler
func NewDeletePurchaseHandler(repo domain.PantryRepository) *DeletePurchaseHandler {
	return &DeletePurchaseHandler{repo: repo}
}

// Handle executes the delete purchase command. The inventory decrement and
// the row delete commit together; a missing purchase is a successful no-op.
func (h *DeletePurchaseHandler) Handle(cmd DeletePurchaseCommand) error {
	id, err := validation.ID("id", cmd.ID)
	if err != nil {
		return err
	}
	return h.repo.DeletePurchase(id)
}
