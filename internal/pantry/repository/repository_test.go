package repository_test

import (
	"errors"
	"testing"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

func TestCreateConsumableStartsWithEmptyInventory(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Toilet Paper")
	if ct.ID == 0 {
		t.Fatal("expected assigned id after create")
	}

	items, err := repo.ListConsumables(0)
	if err != nil {
		t.Fatalf("list consumables: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one consumable, got %d", len(items))
	}
	if items[0].CurrentQuantity != 0 {
		t.Errorf("new consumable quantity = %v, want 0", items[0].CurrentQuantity)
	}
	if items[0].CategoryName != "Household" || items[0].CategoryIcon != "🏠" {
		t.Errorf("joined category = %q %q", items[0].CategoryName, items[0].CategoryIcon)
	}

	inv, err := repo.FindInventoryByConsumableID(ct.ID)
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if inv.CurrentQuantity != 0 || inv.CustomUsageRate != nil {
		t.Errorf("inventory row = %+v, want zero quantity and no override", inv)
	}
}

func TestCreateConsumableDuplicateNameInCategory(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	mustCreateConsumable(t, repo, catID, "Dish Soap")

	dup := &domain.ConsumableType{CategoryID: catID, Name: "Dish Soap", Unit: "bottles"}
	err := repo.CreateConsumable(dup)

	var ce *domain.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	count, err := repo.CountConsumables()
	if err != nil {
		t.Fatalf("count consumables: %v", err)
	}
	if count != 1 {
		t.Errorf("consumable count = %d after rejected duplicate, want 1", count)
	}
}

func TestUpdateConsumable(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Paper Towels")
	ct.Name = "Kitchen Towels"
	ct.DefaultUsageRate = 3.5
	ct.Notes = "prefer recycled"

	if err := repo.UpdateConsumable(ct); err != nil {
		t.Fatalf("update consumable: %v", err)
	}

	got, err := repo.FindConsumableByID(ct.ID)
	if err != nil {
		t.Fatalf("find consumable: %v", err)
	}
	if got.Name != "Kitchen Towels" || got.DefaultUsageRate != 3.5 || got.Notes != "prefer recycled" {
		t.Errorf("updated consumable = %+v", got)
	}
}

func TestUpdateConsumableErrors(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	mustCreateConsumable(t, repo, catID, "Milk")
	other := mustCreateConsumable(t, repo, catID, "Bread")

	missing := &domain.ConsumableType{ID: 9999, CategoryID: catID, Name: "Ghost"}
	var nfe *domain.NotFoundError
	if err := repo.UpdateConsumable(missing); !errors.As(err, &nfe) {
		t.Errorf("expected not-found error for missing id, got %v", err)
	}

	other.Name = "Milk"
	var ce *domain.ConflictError
	if err := repo.UpdateConsumable(other); !errors.As(err, &ce) {
		t.Errorf("expected conflict error for renaming onto an existing name, got %v", err)
	}
}

func TestDeleteConsumableCascades(t *testing.T) {
	t.Parallel()
	repo, db, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Diapers")
	if err := repo.CreatePurchase(&domain.Purchase{
		ConsumableTypeID: ct.ID, Quantity: 50, PurchaseDate: "2026-08-01",
	}); err != nil {
		t.Fatalf("create purchase: %v", err)
	}
	if err := repo.CreateUsageLog(&domain.UsageLog{
		ConsumableTypeID: ct.ID, QuantityUsed: 5, UsageDate: "2026-08-02",
	}); err != nil {
		t.Fatalf("create usage log: %v", err)
	}

	if err := repo.DeleteConsumable(ct.ID); err != nil {
		t.Fatalf("delete consumable: %v", err)
	}

	for _, table := range []string{"consumable_types", "inventory", "purchases", "usage_log"} {
		var count int64
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("%s has %d rows after cascade delete, want 0", table, count)
		}
	}

	// Deleting again is a no-op, not an error
	if err := repo.DeleteConsumable(ct.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestSetInventoryPreservesRateWhenNotUpdating(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Shampoo")

	if err := repo.SetInventory(ct.ID, 5, floatPtr(2.5), true); err != nil {
		t.Fatalf("set inventory with rate: %v", err)
	}
	if err := repo.SetInventory(ct.ID, 8, nil, false); err != nil {
		t.Fatalf("set inventory without rate: %v", err)
	}

	inv, err := repo.FindInventoryByConsumableID(ct.ID)
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if inv.CurrentQuantity != 8 {
		t.Errorf("quantity = %v, want 8", inv.CurrentQuantity)
	}
	if inv.CustomUsageRate == nil || *inv.CustomUsageRate != 2.5 {
		t.Errorf("custom rate = %v, want preserved 2.5", inv.CustomUsageRate)
	}
}

func TestSetUsageRateClearsOverride(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Toothpaste")

	if err := repo.SetUsageRate(ct.ID, floatPtr(1.5)); err != nil {
		t.Fatalf("set usage rate: %v", err)
	}
	if err := repo.SetUsageRate(ct.ID, nil); err != nil {
		t.Fatalf("clear usage rate: %v", err)
	}

	inv, err := repo.FindInventoryByConsumableID(ct.ID)
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if inv.CustomUsageRate != nil {
		t.Errorf("custom rate = %v, want cleared", *inv.CustomUsageRate)
	}
}

func TestSetInventoryMissingConsumable(t *testing.T) {
	t.Parallel()
	repo, _, _ := newTestRepo(t)

	var nfe *domain.NotFoundError
	if err := repo.SetInventory(404, 1, nil, false); !errors.As(err, &nfe) {
		t.Errorf("expected not-found error, got %v", err)
	}
	if err := repo.SetUsageRate(404, nil); !errors.As(err, &nfe) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestPurchaseIncrementsAndReversalRestores(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Rice")
	if err := repo.SetInventory(ct.ID, 3.5, nil, false); err != nil {
		t.Fatalf("set starting quantity: %v", err)
	}

	first := &domain.Purchase{ConsumableTypeID: ct.ID, Quantity: 1.5, PurchaseDate: "2026-08-10"}
	second := &domain.Purchase{ConsumableTypeID: ct.ID, Quantity: 2.25, PurchaseDate: "2026-08-12", Price: floatPtr(6.99)}
	for _, p := range []*domain.Purchase{first, second} {
		if err := repo.CreatePurchase(p); err != nil {
			t.Fatalf("create purchase: %v", err)
		}
	}

	inv, err := repo.FindInventoryByConsumableID(ct.ID)
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if inv.CurrentQuantity != 7.25 {
		t.Errorf("quantity after purchases = %v, want 7.25", inv.CurrentQuantity)
	}

	// Reverse in the opposite order; the starting quantity comes back exactly
	if err := repo.DeletePurchase(second.ID); err != nil {
		t.Fatalf("delete second purchase: %v", err)
	}
	if err := repo.DeletePurchase(first.ID); err != nil {
		t.Fatalf("delete first purchase: %v", err)
	}

	inv, err = repo.FindInventoryByConsumableID(ct.ID)
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if inv.CurrentQuantity != 3.5 {
		t.Errorf("quantity after reversals = %v, want 3.5", inv.CurrentQuantity)
	}
}

func TestCreatePurchaseMissingConsumable(t *testing.T) {
	t.Parallel()
	repo, db, _ := newTestRepo(t)

	err := repo.CreatePurchase(&domain.Purchase{ConsumableTypeID: 404, Quantity: 1, PurchaseDate: "2026-08-10"})
	var nfe *domain.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	var count int64
	if err := db.Table("purchases").Count(&count).Error; err != nil {
		t.Fatalf("count purchases: %v", err)
	}
	if count != 0 {
		t.Errorf("purchase row persisted despite rollback, count = %d", count)
	}
}

func TestDeletePurchaseMissingIsNoop(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Butter")
	if err := repo.SetInventory(ct.ID, 4, nil, false); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	if err := repo.DeletePurchase(12345); err != nil {
		t.Fatalf("delete missing purchase: %v", err)
	}

	inv, err := repo.FindInventoryByConsumableID(ct.ID)
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if inv.CurrentQuantity != 4 {
		t.Errorf("quantity changed by missing-purchase delete: %v", inv.CurrentQuantity)
	}
}

func TestListPurchasesJoinsNameAndRespectsLimit(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Eggs")
	dates := []string{"2026-08-01", "2026-08-05", "2026-08-03"}
	for _, d := range dates {
		if err := repo.CreatePurchase(&domain.Purchase{ConsumableTypeID: ct.ID, Quantity: 1, PurchaseDate: d}); err != nil {
			t.Fatalf("create purchase: %v", err)
		}
	}

	purchases, err := repo.ListPurchases(ct.ID, 2)
	if err != nil {
		t.Fatalf("list purchases: %v", err)
	}
	if len(purchases) != 2 {
		t.Fatalf("expected 2 purchases with limit, got %d", len(purchases))
	}
	if purchases[0].PurchaseDate != "2026-08-05" || purchases[1].PurchaseDate != "2026-08-03" {
		t.Errorf("order = %q, %q, want newest first", purchases[0].PurchaseDate, purchases[1].PurchaseDate)
	}
	if purchases[0].ConsumableName != "Eggs" || purchases[0].Unit != "units" {
		t.Errorf("joined fields = %q %q", purchases[0].ConsumableName, purchases[0].Unit)
	}
}

func TestStatsCounts(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	low := mustCreateConsumable(t, repo, catID, "Trash Bags")  // min stock 2
	fine := mustCreateConsumable(t, repo, catID, "Hand Soap")  // min stock 2
	if err := repo.SetInventory(low.ID, 1, nil, false); err != nil {
		t.Fatalf("set inventory: %v", err)
	}
	if err := repo.SetInventory(fine.ID, 10, nil, false); err != nil {
		t.Fatalf("set inventory: %v", err)
	}

	needs, err := repo.CountNeedsPurchase()
	if err != nil {
		t.Fatalf("count needs purchase: %v", err)
	}
	if needs != 1 {
		t.Errorf("needs purchase count = %d, want 1", needs)
	}

	if err := repo.CreatePurchase(&domain.Purchase{ConsumableTypeID: low.ID, Quantity: 6, PurchaseDate: "2026-08-20"}); err != nil {
		t.Fatalf("create purchase: %v", err)
	}
	if err := repo.CreatePurchase(&domain.Purchase{ConsumableTypeID: low.ID, Quantity: 6, PurchaseDate: "2026-01-01"}); err != nil {
		t.Fatalf("create purchase: %v", err)
	}

	recent, err := repo.CountRecentPurchases("2026-08-01")
	if err != nil {
		t.Fatalf("count recent purchases: %v", err)
	}
	if recent != 1 {
		t.Errorf("recent purchase count = %d, want 1", recent)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	repo, _, catID := newTestRepo(t)

	ct := mustCreateConsumable(t, repo, catID, "Cereal")
	if err := repo.SetInventory(ct.ID, 3, floatPtr(2), true); err != nil {
		t.Fatalf("set inventory: %v", err)
	}
	if err := repo.CreatePurchase(&domain.Purchase{ConsumableTypeID: ct.ID, Quantity: 2, PurchaseDate: "2026-08-15"}); err != nil {
		t.Fatalf("create purchase: %v", err)
	}

	state, err := repo.ExportState()
	if err != nil {
		t.Fatalf("export state: %v", err)
	}
	if state.Signature != domain.StateSignature || state.Version != domain.StateVersion {
		t.Fatalf("export header = %q v%d", state.Signature, state.Version)
	}

	// Mutate after the export, then restore
	if err := repo.SetInventory(ct.ID, 99, nil, false); err != nil {
		t.Fatalf("set inventory: %v", err)
	}
	mustCreateConsumable(t, repo, catID, "Pasta")

	if err := repo.ImportState(state); err != nil {
		t.Fatalf("import state: %v", err)
	}

	count, err := repo.CountConsumables()
	if err != nil {
		t.Fatalf("count consumables: %v", err)
	}
	if count != 1 {
		t.Errorf("consumable count after restore = %d, want 1", count)
	}

	inv, err := repo.FindInventoryByConsumableID(ct.ID)
	if err != nil {
		t.Fatalf("find inventory: %v", err)
	}
	if inv.CurrentQuantity != 5 {
		t.Errorf("restored quantity = %v, want 5 (3 set + 2 purchased)", inv.CurrentQuantity)
	}
	if inv.CustomUsageRate == nil || *inv.CustomUsageRate != 2 {
		t.Errorf("restored custom rate = %v, want 2", inv.CustomUsageRate)
	}
}
