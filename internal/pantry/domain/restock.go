package domain

import (
	"math"
	"sort"
)

// lowStockHorizonDays is the projection window for the low-stock flag
const lowStockHorizonDays = 7.0

// PeriodDays returns the number of days a usage rate period covers.
// Unknown periods are treated as weekly.
func PeriodDays(period string) float64 {
	switch period {
	case PeriodDay:
		return 1
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 7
	}
}

// RestockEstimate is the derived restock state of one consumable
type RestockEstimate struct {
	EffectiveUsageRate float64 `json:"effective_usage_rate"`
	// DaysUntilEmpty is rounded to one decimal for display. It is nil when
	// the item never empties (zero usage rate); a numeric sentinel would
	// invite silent misuse by clients.
	DaysUntilEmpty *float64 `json:"days_until_empty"`
	NeedsPurchase  bool     `json:"needs_purchase"`
	LowStock       bool     `json:"low_stock"`

	daysExact float64 // unrounded, +Inf when never empties
}

// EstimateRestock computes the restock state from the current quantity, the
// usage rate configuration and the minimum stock threshold. A custom rate
// overrides the default; a missing or zero override falls back to the
// default rather than failing.
func EstimateRestock(quantity, defaultRate float64, customRate *float64, period string, minStock float64) RestockEstimate {
	effective := defaultRate
	if customRate != nil && *customRate != 0 {
		effective = *customRate
	}

	dailyRate := effective / PeriodDays(period)

	est := RestockEstimate{
		EffectiveUsageRate: effective,
		NeedsPurchase:      quantity <= minStock,
		daysExact:          math.Inf(1),
	}

	if dailyRate > 0 {
		est.daysExact = quantity / dailyRate
		rounded := math.Round(est.daysExact*10) / 10
		est.DaysUntilEmpty = &rounded
	}

	// Flag comparisons use the unrounded value
	est.LowStock = est.daysExact <= lowStockHorizonDays && !est.NeedsPurchase

	return est
}

// DashboardItem is a consumable enriched with its restock estimate
type DashboardItem struct {
	ConsumableWithInventory
	RestockEstimate

	ratio float64
}

// BuildDashboardItem computes the restock estimate for a joined consumable
// row. A consumable without an inventory row counts as empty.
func BuildDashboardItem(c ConsumableWithInventory) DashboardItem {
	est := EstimateRestock(c.CurrentQuantity, c.DefaultUsageRate, c.CustomUsageRate, c.UsageRatePeriod, c.MinStockLevel)

	// Raw stock-to-rate ratio, deliberately not normalized by period: this
	// matches the established ranking signal and is not the same value as
	// days_until_empty.
	ratio := math.Inf(1)
	if est.EffectiveUsageRate > 0 {
		ratio = c.CurrentQuantity / est.EffectiveUsageRate
	}

	return DashboardItem{
		ConsumableWithInventory: c,
		RestockEstimate:         est,
		ratio:                   ratio,
	}
}

// SortByPriority orders dashboard items for restock attention: items at or
// below their minimum stock level first, then ascending stock-to-rate ratio
// within each group. Items that never empty sort last in their group.
func SortByPriority(items []DashboardItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].NeedsPurchase != items[j].NeedsPurchase {
			return items[i].NeedsPurchase
		}
		return items[i].ratio < items[j].ratio
	})
}
