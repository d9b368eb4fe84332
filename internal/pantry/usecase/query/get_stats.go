package query

import (
	"time"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

// GetStatsQuery represents the query for inventory statistics
type GetStatsQuery struct{}

// Stats represents the headline inventory counts
type Stats struct {
	NeedsPurchase   int64 `json:"needs_purchase"`
	TotalItems      int64 `json:"total_items"`
	RecentPurchases int64 `json:"recent_purchases"` // last 7 days
}

// GetStatsHandler handles the stats query
type GetStatsHandler struct {
	repo domain.PantryRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.PantryRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(GetStatsQuery) (*Stats, error) {
	needsPurchase, err := h.repo.CountNeedsPurchase()
	if err != nil {
		return nil, err
	}
	totalItems, err := h.repo.CountConsumables()
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	recent, err := h.repo.CountRecentPurchases(since)
	if err != nil {
		return nil, err
	}

	return &Stats{
		NeedsPurchase:   needsPurchase,
		TotalItems:      totalItems,
		RecentPurchases: recent,
	}, nil
}
