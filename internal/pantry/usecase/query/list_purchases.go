package query

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

const (
	defaultPurchaseLimit = 50
	maxPurchaseLimit     = 200
)

// ListPurchasesQuery represents the query to list purchases, newest first
type ListPurchasesQuery struct {
	ConsumableTypeID uint // 0 = all consumables
	Limit            int
}

// ListPurchasesHandler handles the list purchases query
type ListPurchasesHandler struct {
	repo domain.PantryRepository
}

// NewListPurchasesHandler creates a new list purchases handler
func NewListPurchasesHandler(repo domain.PantryRepository) *ListPurchasesHandler {
	return &ListPurchasesHandler{repo: repo}
}

// Handle executes the list purchases query
func (h *ListPurchasesHandler) Handle(q ListPurchasesQuery) ([]domain.PurchaseWithConsumable, error) {
	if q.Limit <= 0 {
		q.Limit = defaultPurchaseLimit
	}
	if q.Limit > maxPurchaseLimit {
		q.Limit = maxPurchaseLimit
	}
	return h.repo.ListPurchases(q.ConsumableTypeID, q.Limit)
}
