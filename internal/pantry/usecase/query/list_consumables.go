package query

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

// ListConsumablesQuery represents the query to list consumables, optionally
// filtered to one category.
type ListConsumablesQuery struct {
	CategoryID uint // 0 = all categories
}

// ListConsumablesHandler handles the list consumables query
type ListConsumablesHandler struct {
	repo domain.PantryRepository
}

// NewListConsumablesHandler creates a new list consumables handler
func NewListConsumablesHandler(repo domain.PantryRepository) *ListConsumablesHandler {
	return &ListConsumablesHandler{repo: repo}
}

// Handle executes the list consumables query. Each row carries the category
// name and icon plus the joined inventory state.
func (h *ListConsumablesHandler) Handle(q ListConsumablesQuery) ([]domain.ConsumableWithInventory, error) {
	return h.repo.ListConsumables(q.CategoryID)
}
