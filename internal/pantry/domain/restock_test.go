package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestPeriodDays(t *testing.T) {
	t.Parallel()

	cases := []struct {
		period string
		want   float64
	}{
		{domain.PeriodDay, 1},
		{domain.PeriodWeek, 7},
		{domain.PeriodMonth, 30},
		{"fortnight", 7},
		{"", 7},
	}
	for _, c := range cases {
		if got := domain.PeriodDays(c.period); got != c.want {
			t.Errorf("PeriodDays(%q) = %v, want %v", c.period, got, c.want)
		}
	}
}

func TestEstimateRestockHealthyStock(t *testing.T) {
	t.Parallel()

	est := domain.EstimateRestock(14, 7, nil, domain.PeriodWeek, 4)

	if est.EffectiveUsageRate != 7 {
		t.Errorf("effective rate = %v, want 7", est.EffectiveUsageRate)
	}
	if est.DaysUntilEmpty == nil || *est.DaysUntilEmpty != 14.0 {
		t.Errorf("days until empty = %v, want 14.0", est.DaysUntilEmpty)
	}
	if est.NeedsPurchase {
		t.Error("needs purchase should be false at quantity 14 with min stock 4")
	}
	if est.LowStock {
		t.Error("low stock should be false at 14 days of supply")
	}
}

func TestEstimateRestockNeedsPurchase(t *testing.T) {
	t.Parallel()

	est := domain.EstimateRestock(3, 7, nil, domain.PeriodWeek, 4)

	if !est.NeedsPurchase {
		t.Error("needs purchase should be true at quantity 3 with min stock 4")
	}
	if est.DaysUntilEmpty == nil || *est.DaysUntilEmpty != 3.0 {
		t.Errorf("days until empty = %v, want 3.0", est.DaysUntilEmpty)
	}
	if est.LowStock {
		t.Error("low stock must not overlap needs purchase")
	}
}

func TestEstimateRestockAtExactThreshold(t *testing.T) {
	t.Parallel()

	est := domain.EstimateRestock(4, 7, nil, domain.PeriodWeek, 4)
	if !est.NeedsPurchase {
		t.Error("quantity equal to min stock must flag needs purchase")
	}
}

func TestEstimateRestockLowStock(t *testing.T) {
	t.Parallel()

	// 6 days of supply, above the min stock threshold
	est := domain.EstimateRestock(6, 7, nil, domain.PeriodWeek, 2)

	if est.NeedsPurchase {
		t.Error("needs purchase should be false above min stock")
	}
	if !est.LowStock {
		t.Error("low stock should be true at 6 days of supply")
	}
}

func TestEstimateRestockZeroRate(t *testing.T) {
	t.Parallel()

	est := domain.EstimateRestock(5, 0, nil, domain.PeriodWeek, 2)

	if est.DaysUntilEmpty != nil {
		t.Errorf("days until empty = %v, want nil for zero rate", *est.DaysUntilEmpty)
	}
	if est.LowStock {
		t.Error("an item that never empties is not low stock")
	}
	if est.NeedsPurchase {
		t.Error("quantity 5 above min stock 2 should not need purchase")
	}

	// The threshold comparison still applies with a zero rate
	empty := domain.EstimateRestock(0, 0, nil, domain.PeriodWeek, 2)
	if !empty.NeedsPurchase {
		t.Error("zero quantity at or below min stock must flag needs purchase")
	}
}

func TestEstimateRestockCustomRateOverride(t *testing.T) {
	t.Parallel()

	est := domain.EstimateRestock(14, 7, floatPtr(14), domain.PeriodWeek, 2)
	if est.EffectiveUsageRate != 14 {
		t.Errorf("effective rate = %v, want custom 14", est.EffectiveUsageRate)
	}
	if est.DaysUntilEmpty == nil || *est.DaysUntilEmpty != 7.0 {
		t.Errorf("days until empty = %v, want 7.0", est.DaysUntilEmpty)
	}

	// A zero override falls back to the default rate
	fallback := domain.EstimateRestock(14, 7, floatPtr(0), domain.PeriodWeek, 2)
	if fallback.EffectiveUsageRate != 7 {
		t.Errorf("effective rate = %v, want default 7 when override is zero", fallback.EffectiveUsageRate)
	}
}

func TestEstimateRestockRounding(t *testing.T) {
	t.Parallel()

	// 10 / (3/7) = 23.333..., displayed as 23.3
	est := domain.EstimateRestock(10, 3, nil, domain.PeriodWeek, 1)
	if est.DaysUntilEmpty == nil || *est.DaysUntilEmpty != 23.3 {
		t.Errorf("days until empty = %v, want 23.3", est.DaysUntilEmpty)
	}
}

func TestEstimateRestockLowStockUsesUnroundedDays(t *testing.T) {
	t.Parallel()

	// 7.04 days rounds to 7.0 for display but is above the horizon
	est := domain.EstimateRestock(7.04, 1, nil, domain.PeriodDay, 1)
	if est.DaysUntilEmpty == nil || *est.DaysUntilEmpty != 7.0 {
		t.Errorf("days until empty = %v, want display value 7.0", est.DaysUntilEmpty)
	}
	if est.LowStock {
		t.Error("low stock must compare the unrounded value, 7.04 > 7")
	}
}

func TestEstimateRestockDailyAndMonthlyPeriods(t *testing.T) {
	t.Parallel()

	daily := domain.EstimateRestock(6, 2, nil, domain.PeriodDay, 1)
	if daily.DaysUntilEmpty == nil || *daily.DaysUntilEmpty != 3.0 {
		t.Errorf("daily period: days = %v, want 3.0", daily.DaysUntilEmpty)
	}

	monthly := domain.EstimateRestock(2, 2, nil, domain.PeriodMonth, 1)
	if monthly.DaysUntilEmpty == nil || *monthly.DaysUntilEmpty != 30.0 {
		t.Errorf("monthly period: days = %v, want 30.0", monthly.DaysUntilEmpty)
	}
}

func TestRestockEstimateNullDaysJSON(t *testing.T) {
	t.Parallel()

	est := domain.EstimateRestock(5, 0, nil, domain.PeriodWeek, 1)
	body, err := json.Marshal(est)
	if err != nil {
		t.Fatalf("marshal estimate: %v", err)
	}
	if !strings.Contains(string(body), `"days_until_empty":null`) {
		t.Errorf("expected null days_until_empty in %s", body)
	}
}

func dashboardItem(name string, qty, rate, minStock float64) domain.DashboardItem {
	return domain.BuildDashboardItem(domain.ConsumableWithInventory{
		ConsumableType: domain.ConsumableType{
			Name:             name,
			DefaultUsageRate: rate,
			UsageRatePeriod:  domain.PeriodWeek,
			MinStockLevel:    minStock,
		},
		CurrentQuantity: qty,
	})
}

func TestSortByPriorityGroupsNeedsPurchaseFirst(t *testing.T) {
	t.Parallel()

	items := []domain.DashboardItem{
		dashboardItem("plenty", 100, 1, 1),
		dashboardItem("urgent", 0.5, 1, 1),
		dashboardItem("fine", 20, 1, 1),
	}
	domain.SortByPriority(items)

	if items[0].Name != "urgent" {
		t.Errorf("first item = %q, want the needs-purchase item", items[0].Name)
	}
	if items[1].Name != "fine" || items[2].Name != "plenty" {
		t.Errorf("remaining order = %q, %q, want fine then plenty", items[1].Name, items[2].Name)
	}
}

func TestSortByPriorityOrdersByStockToRateRatio(t *testing.T) {
	t.Parallel()

	// Same group, ratios 2, 0.5 and 8: the ranking signal is quantity
	// divided by the raw per-period rate, not days of supply.
	items := []domain.DashboardItem{
		dashboardItem("middle", 4, 2, 0),
		dashboardItem("tight", 1, 2, 0),
		dashboardItem("loose", 16, 2, 0),
	}
	domain.SortByPriority(items)

	want := []string{"tight", "middle", "loose"}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, items[i].Name, name)
		}
	}
}

func TestSortByPriorityZeroRateSortsLast(t *testing.T) {
	t.Parallel()

	items := []domain.DashboardItem{
		dashboardItem("never-empties", 3, 0, 0),
		dashboardItem("normal", 3, 1, 0),
	}
	domain.SortByPriority(items)

	if items[0].Name != "normal" {
		t.Errorf("first item = %q, want the consuming item before the zero-rate one", items[0].Name)
	}
}

func TestSortByPriorityStableAcrossNeedsGroup(t *testing.T) {
	t.Parallel()

	// Within the needs-purchase group ordering is still by ratio, so a
	// larger stockpile of a slow mover outranks nothing.
	items := []domain.DashboardItem{
		dashboardItem("half-gone", 2, 4, 5),
		dashboardItem("empty", 0, 4, 5),
	}
	domain.SortByPriority(items)

	if items[0].Name != "empty" {
		t.Errorf("first item = %q, want the emptier item first", items[0].Name)
	}
	if !items[0].NeedsPurchase || !items[1].NeedsPurchase {
		t.Error("both items should be flagged for purchase")
	}
}
