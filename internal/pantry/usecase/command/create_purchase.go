package command

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

// CreatePurchaseCommand represents the command to record a purchase
type CreatePurchaseCommand struct {
	ConsumableTypeID uint
	Quantity         *float64
	PurchaseDate     *string
	Price            *float64
	Notes            *string
}

// CreatePurchaseHandler handles purchase creation
type CreatePurchaseHandler struct {
	repo domain.PantryRepository
}

// NewCreatePurchaseHandler creates a new create purchase handler
func NewCreatePurchaseHandler(repo domain.PantryRepository) *CreatePurchaseHandler {
	return &CreatePurchaseHandler{repo: repo}
}

// Handle executes the create purchase command. The purchase insert and the
// inventory increment commit together or not at all.
func (h *CreatePurchaseHandler) Handle(cmd CreatePurchaseCommand) (*domain.Purchase, error) {
	id, err := validation.ID("consumable_type_id", cmd.ConsumableTypeID)
	if err != nil {
		return nil, err
	}
	quantity, err := validation.Number("quantity", cmd.Quantity, true, false)
	if err != nil {
		return nil, err
	}
	date, err := validation.Date("purchase_date", cmd.PurchaseDate)
	if err != nil {
		return nil, err
	}
	var price *float64
	if cmd.Price != nil {
		price, err = validation.Number("price", cmd.Price, false, true)
		if err != nil {
			return nil, err
		}
	}
	notes, err := validation.String("notes", cmd.Notes, false)
	if err != nil {
		return nil, err
	}

	purchase := &domain.Purchase{
		ConsumableTypeID: id,
		Quantity:         *quantity,
		PurchaseDate:     date,
		Price:            price,
		Notes:            notes,
	}

	if err := h.repo.CreatePurchase(purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}
