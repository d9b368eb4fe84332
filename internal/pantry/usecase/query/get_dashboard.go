package query

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

// GetDashboardQuery represents the query for the restock dashboard
type GetDashboardQuery struct{}

// GetDashboardHandler handles the dashboard query
type GetDashboardHandler struct {
	repo domain.PantryRepository
}

// NewGetDashboardHandler creates a new get dashboard handler
func NewGetDashboardHandler(repo domain.PantryRepository) *GetDashboardHandler {
	return &GetDashboardHandler{repo: repo}
}

// Handle builds the prioritized restock list: every consumable enriched with
// its restock estimate, items at or below their minimum stock first, then by
// ascending stock-to-rate ratio.
func (h *GetDashboardHandler) Handle(GetDashboardQuery) ([]domain.DashboardItem, error) {
	consumables, err := h.repo.ListConsumables(0)
	if err != nil {
		return nil, err
	}

	items := make([]domain.DashboardItem, 0, len(consumables))
	for _, c := range consumables {
		items = append(items, domain.BuildDashboardItem(c))
	}

	domain.SortByPriority(items)
	return items, nil
}
