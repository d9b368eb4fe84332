package query

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

// ListUsageQuery represents the query to list usage log entries, newest first
type ListUsageQuery struct {
	ConsumableTypeID uint // 0 = all consumables
	Limit            int
}

// ListUsageHandler handles the list usage query
type ListUsageHandler struct {
	repo domain.PantryRepository
}

// NewListUsageHandler creates a new list usage handler
func NewListUsageHandler(repo domain.PantryRepository) *ListUsageHandler {
	return &ListUsageHandler{repo: repo}
}

// Handle executes the list usage query
func (h *ListUsageHandler) Handle(q ListUsageQuery) ([]domain.UsageLog, error) {
	if q.Limit <= 0 {
		q.Limit = defaultPurchaseLimit
	}
	if q.Limit > maxPurchaseLimit {
		q.Limit = maxPurchaseLimit
	}
	return h.repo.ListUsageLogs(q.ConsumableTypeID, q.Limit)
}
