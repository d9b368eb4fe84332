package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/repository"
)

func floatPtr(v float64) *float64 { return &v }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pantry.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db
}

// newTestRepo returns a migrated repository with one seeded category
func newTestRepo(t *testing.T) (*repository.GormPantryRepository, *gorm.DB, uint) {
	t.Helper()

	db := newTestDB(t)
	repo := repository.NewGormPantryRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	cat := domain.Category{Name: "Household", Icon: "🏠"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return repo, db, cat.ID
}

func mustCreateConsumable(t *testing.T, repo *repository.GormPantryRepository, categoryID uint, name string) *domain.ConsumableType {
	t.Helper()

	ct := &domain.ConsumableType{
		CategoryID:       categoryID,
		Name:             name,
		Unit:             "units",
		DefaultUsageRate: 7.0,
		UsageRatePeriod:  domain.PeriodWeek,
		MinStockLevel:    2.0,
	}
	if err := repo.CreateConsumable(ct); err != nil {
		t.Fatalf("create consumable %q: %v", name, err)
	}
	return ct
}
