package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/pkg/logger"
)

type schemaMigration struct {
	Version   int    `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type migrationStep struct {
	version int
	name    string
	apply   func(tx *gorm.DB) error
}

// Migrator prepares the schema before the service accepts traffic: versioned
// data migrations first, then schema sync, then idempotent seed data.
type Migrator struct {
	db *gorm.DB
}

func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{db: db}
}

// Run applies pending migrations, syncs the schema and seeds defaults. It is
// safe to run on every startup.
func (m *Migrator) Run() error {
	if err := m.db.AutoMigrate(&schemaMigration{}); err != nil {
		return err
	}

	steps := []migrationStep{
		{1, "remove_duplicate_consumables", removeDuplicateConsumables},
	}

	for _, step := range steps {
		var applied int64
		if err := m.db.Model(&schemaMigration{}).Where("version = ?", step.version).Count(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			continue
		}

		logger.Logger.Info().
			Int("version", step.version).
			Str("name", step.name).
			Msg("Applying migration")

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := step.apply(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{
				Version:   step.version,
				Name:      step.name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			return err
		}
	}

	repo := NewGormPantryRepository(m.db)
	if err := repo.AutoMigrate(); err != nil {
		return err
	}

	return m.seed()
}

// removeDuplicateConsumables keeps the first (lowest-id) consumable of each
// (category_id, name) pair and drops the rest with their dependent rows.
// Needed for databases written before the uniqueness constraint existed.
func removeDuplicateConsumables(tx *gorm.DB) error {
	if !tx.Migrator().HasTable("consumable_types") {
		return nil
	}

	type dupGroup struct {
		CategoryID uint
		Name       string
		KeepID     uint
	}

	var groups []dupGroup
	err := tx.Table("consumable_types").
		Select("category_id, name, MIN(id) AS keep_id").
		Group("category_id").Group("name").
		Having("COUNT(*) > 1").
		Scan(&groups).Error
	if err != nil {
		return err
	}

	for _, g := range groups {
		var dupIDs []uint
		err := tx.Table("consumable_types").
			Where("category_id = ? AND name = ? AND id <> ?", g.CategoryID, g.Name, g.KeepID).
			Pluck("id", &dupIDs).Error
		if err != nil {
			return err
		}
		if len(dupIDs) == 0 {
			continue
		}

		for _, table := range []string{"inventory", "purchases", "usage_log"} {
			if !tx.Migrator().HasTable(table) {
				continue
			}
			if err := tx.Exec("DELETE FROM "+table+" WHERE consumable_type_id IN ?", dupIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM consumable_types WHERE id IN ?", dupIDs).Error; err != nil {
			return err
		}

		logger.Logger.Info().
			Str("name", g.Name).
			Int("removed", len(dupIDs)).
			Msg("Removed duplicate consumables")
	}

	return nil
}

type seedConsumable struct {
	category string
	name     string
	unit     string
	rate     float64
	period   string
	minStock float64
}

var seedCategories = []domain.Category{
	{Name: "Household", Icon: "🏠"},
	{Name: "Food & Pantry", Icon: "🍎"},
	{Name: "Personal Care", Icon: "🧴"},
}

// Usage rates sized for a family of five (two adults, three young children)
var seedConsumables = []seedConsumable{
	{"Household", "Toilet Paper", "rolls", 7.0, domain.PeriodWeek, 4},
	{"Household", "Paper Towels", "rolls", 2.0, domain.PeriodWeek, 2},
	{"Household", "Dish Soap", "bottles", 1.0, domain.PeriodMonth, 1},
	{"Household", "Laundry Detergent", "loads", 10.0, domain.PeriodWeek, 20},
	{"Household", "Trash Bags", "bags", 7.0, domain.PeriodWeek, 10},
	{"Household", "Diapers", "diapers", 35.0, domain.PeriodWeek, 50},
	{"Household", "Baby Wipes", "packs", 2.0, domain.PeriodWeek, 2},
	{"Household", "Cleaning Spray", "bottles", 1.0, domain.PeriodMonth, 1},
	{"Household", "Sponges", "sponges", 2.0, domain.PeriodMonth, 2},

	{"Food & Pantry", "Milk", "gallons", 3.0, domain.PeriodWeek, 2},
	{"Food & Pantry", "Bread", "loaves", 2.0, domain.PeriodWeek, 1},
	{"Food & Pantry", "Eggs", "dozens", 2.0, domain.PeriodWeek, 1},
	{"Food & Pantry", "Butter", "sticks", 2.0, domain.PeriodWeek, 2},
	{"Food & Pantry", "Cereal", "boxes", 2.0, domain.PeriodWeek, 2},
	{"Food & Pantry", "Juice Boxes", "boxes", 15.0, domain.PeriodWeek, 10},
	{"Food & Pantry", "Snack Crackers", "boxes", 2.0, domain.PeriodWeek, 2},
	{"Food & Pantry", "Fruit Snacks", "boxes", 1.0, domain.PeriodWeek, 1},
	{"Food & Pantry", "Pasta", "boxes", 2.0, domain.PeriodWeek, 3},
	{"Food & Pantry", "Rice", "pounds", 1.0, domain.PeriodWeek, 2},

	{"Personal Care", "Toothpaste", "tubes", 1.0, domain.PeriodMonth, 1},
	{"Personal Care", "Shampoo", "bottles", 1.0, domain.PeriodMonth, 1},
	{"Personal Care", "Conditioner", "bottles", 1.0, domain.PeriodMonth, 1},
	{"Personal Care", "Body Wash", "bottles", 2.0, domain.PeriodMonth, 1},
	{"Personal Care", "Hand Soap", "bottles", 2.0, domain.PeriodMonth, 2},
	{"Personal Care", "Lotion", "bottles", 1.0, domain.PeriodMonth, 1},
	{"Personal Care", "Sunscreen", "bottles", 1.0, domain.PeriodMonth, 1},
	{"Personal Care", "Band-Aids", "boxes", 1.0, domain.PeriodMonth, 1},
	{"Personal Care", "Children's Tylenol", "bottles", 1.0, domain.PeriodMonth, 1},
}

func (m *Migrator) seed() error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		categoryIDs := make(map[string]uint)
		for _, c := range seedCategories {
			cat := domain.Category{Name: c.Name}
			if err := tx.Where("name = ?", c.Name).
				Attrs(domain.Category{Icon: c.Icon}).
				FirstOrCreate(&cat).Error; err != nil {
				return err
			}
			categoryIDs[c.Name] = cat.ID
		}

		for _, s := range seedConsumables {
			ct := domain.ConsumableType{CategoryID: categoryIDs[s.category], Name: s.name}
			err := tx.Where("category_id = ? AND name = ?", ct.CategoryID, ct.Name).
				Attrs(domain.ConsumableType{
					Unit:             s.unit,
					DefaultUsageRate: s.rate,
					UsageRatePeriod:  s.period,
					MinStockLevel:    s.minStock,
				}).
				FirstOrCreate(&ct).Error
			if err != nil {
				return err
			}
		}

		// Every consumable gets an inventory row
		var missing []uint
		err := tx.Table("consumable_types").
			Where("id NOT IN (?)", tx.Table("inventory").Select("consumable_type_id")).
			Pluck("id", &missing).Error
		if err != nil {
			return err
		}
		for _, id := range missing {
			inv := domain.Inventory{
				ConsumableTypeID: id,
				CurrentQuantity:  0,
				LastUpdated:      time.Now(),
			}
			if err := tx.Create(&inv).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
