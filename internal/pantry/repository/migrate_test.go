package repository_test

import (
	"os"
	"testing"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/repository"
	"github.com/eh112358/home-inventory-dashboard/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("repository-test", false)
	os.Exit(m.Run())
}

func TestMigratorSeedsCatalog(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if err := repository.NewMigrator(db).Run(); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	repo := repository.NewGormPantryRepository(db)

	categories, err := repo.ListCategories()
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("seeded categories = %d, want 3", len(categories))
	}

	items, err := repo.ListConsumables(0)
	if err != nil {
		t.Fatalf("list consumables: %v", err)
	}
	if len(items) != 28 {
		t.Fatalf("seeded consumables = %d, want 28", len(items))
	}
	for _, item := range items {
		if item.Name == "Toilet Paper" {
			if item.Unit != "rolls" || item.DefaultUsageRate != 7.0 || item.MinStockLevel != 4 {
				t.Errorf("seeded Toilet Paper = %+v", item.ConsumableType)
			}
		}
		// Every seeded consumable starts with an inventory row at zero
		if item.CurrentQuantity != 0 {
			t.Errorf("%s starts at quantity %v, want 0", item.Name, item.CurrentQuantity)
		}
	}

	var invCount int64
	if err := db.Table("inventory").Count(&invCount).Error; err != nil {
		t.Fatalf("count inventory: %v", err)
	}
	if invCount != 28 {
		t.Errorf("inventory rows = %d, want 28", invCount)
	}
}

func TestMigratorIsIdempotent(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	for i := 0; i < 2; i++ {
		if err := repository.NewMigrator(db).Run(); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	repo := repository.NewGormPantryRepository(db)
	count, err := repo.CountConsumables()
	if err != nil {
		t.Fatalf("count consumables: %v", err)
	}
	if count != 28 {
		t.Errorf("consumables after second run = %d, want 28", count)
	}

	var migrations int64
	if err := db.Table("schema_migrations").Count(&migrations).Error; err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrations != 1 {
		t.Errorf("recorded migrations = %d, want 1", migrations)
	}
}

func TestMigratorRemovesDuplicateConsumables(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	// A database written before the uniqueness constraint existed: no unique
	// index, duplicate rows for the same (category_id, name) pair.
	stmts := []string{
		`CREATE TABLE categories (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL, icon TEXT)`,
		`CREATE TABLE consumable_types (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			unit TEXT NOT NULL DEFAULT 'units',
			default_usage_rate REAL NOT NULL DEFAULT 1.0,
			usage_rate_period TEXT NOT NULL DEFAULT 'week',
			min_stock_level REAL NOT NULL DEFAULT 1.0,
			notes TEXT,
			created_at DATETIME
		)`,
		`CREATE TABLE inventory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			consumable_type_id INTEGER NOT NULL,
			current_quantity REAL NOT NULL DEFAULT 0,
			custom_usage_rate REAL,
			last_updated DATETIME
		)`,
		`INSERT INTO categories (id, name, icon) VALUES (1, 'Household', '🏠')`,
		`INSERT INTO consumable_types (id, category_id, name) VALUES (10, 1, 'Toilet Paper')`,
		`INSERT INTO consumable_types (id, category_id, name) VALUES (11, 1, 'Toilet Paper')`,
		`INSERT INTO consumable_types (id, category_id, name) VALUES (12, 1, 'Toilet Paper')`,
		`INSERT INTO inventory (consumable_type_id, current_quantity) VALUES (10, 4)`,
		`INSERT INTO inventory (consumable_type_id, current_quantity) VALUES (11, 7)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("prepare legacy schema: %v", err)
		}
	}

	if err := repository.NewMigrator(db).Run(); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	var ids []uint
	err := db.Table("consumable_types").
		Where("category_id = ? AND name = ?", 1, "Toilet Paper").
		Pluck("id", &ids).Error
	if err != nil {
		t.Fatalf("query survivors: %v", err)
	}
	if len(ids) != 1 || ids[0] != 10 {
		t.Fatalf("surviving ids = %v, want only the lowest id 10", ids)
	}

	var orphaned int64
	if err := db.Table("inventory").Where("consumable_type_id IN (11, 12)").Count(&orphaned).Error; err != nil {
		t.Fatalf("count orphaned inventory: %v", err)
	}
	if orphaned != 0 {
		t.Errorf("orphaned inventory rows = %d, want 0", orphaned)
	}
}
