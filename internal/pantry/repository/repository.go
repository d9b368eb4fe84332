package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

// GormPantryRepository implements domain.PantryRepository on GORM
type GormPantryRepository struct {
	db *gorm.DB
}

func NewGormPantryRepository(db *gorm.DB) *GormPantryRepository {
	return &GormPantryRepository{db: db}
}

func (r *GormPantryRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Category{},
		&domain.ConsumableType{},
		&domain.Inventory{},
		&domain.Purchase{},
		&domain.UsageLog{},
	)
}

func (r *GormPantryRepository) ListCategories() ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Order("name").Find(&categories).Error
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return categories, nil
}

// CreateConsumable inserts a consumable type together with its zero-quantity
// inventory row in one transaction.
func (r *GormPantryRepository) CreateConsumable(ct *domain.ConsumableType) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.ConsumableType
		err := tx.Where("category_id = ? AND name = ?", ct.CategoryID, ct.Name).First(&existing).Error
		if err == nil {
			return domain.NewConflictError("a consumable with this name already exists in the category")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(ct).Error; err != nil {
			return err
		}

		inv := &domain.Inventory{
			ConsumableTypeID: ct.ID,
			CurrentQuantity:  0,
			LastUpdated:      time.Now(),
		}
		return tx.Create(inv).Error
	})
	return wrapStorage(err)
}

func (r *GormPantryRepository) FindConsumableByID(id uint) (*domain.ConsumableType, error) {
	var ct domain.ConsumableType
	err := r.db.First(&ct, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("consumable", id)
	}
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return &ct, nil
}

func (r *GormPantryRepository) ListConsumables(categoryID uint) ([]domain.ConsumableWithInventory, error) {
	q := r.db.Table("consumable_types").
		Select(`consumable_types.*,
			categories.name AS category_name,
			categories.icon AS category_icon,
			COALESCE(inventory.current_quantity, 0) AS current_quantity,
			inventory.custom_usage_rate`).
		Joins("JOIN categories ON categories.id = consumable_types.category_id").
		Joins("LEFT JOIN inventory ON inventory.consumable_type_id = consumable_types.id")

	if categoryID != 0 {
		q = q.Where("consumable_types.category_id = ?", categoryID).
			Order("consumable_types.name")
	} else {
		q = q.Order("categories.name").Order("consumable_types.name")
	}

	var consumables []domain.ConsumableWithInventory
	if err := q.Scan(&consumables).Error; err != nil {
		return nil, domain.NewStorageError(err)
	}
	return consumables, nil
}

func (r *GormPantryRepository) UpdateConsumable(ct *domain.ConsumableType) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.ConsumableType
		if err := tx.First(&existing, ct.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("consumable", ct.ID)
			}
			return err
		}

		var dup domain.ConsumableType
		err := tx.Where("category_id = ? AND name = ? AND id <> ?", ct.CategoryID, ct.Name, ct.ID).First(&dup).Error
		if err == nil {
			return domain.NewConflictError("a consumable with this name already exists in the category")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Model(&domain.ConsumableType{}).
			Where("id = ?", ct.ID).
			Updates(map[string]interface{}{
				"category_id":        ct.CategoryID,
				"name":               ct.Name,
				"unit":               ct.Unit,
				"default_usage_rate": ct.DefaultUsageRate,
				"usage_rate_period":  ct.UsageRatePeriod,
				"min_stock_level":    ct.MinStockLevel,
				"notes":              ct.Notes,
			}).Error
	})
	return wrapStorage(err)
}

// DeleteConsumable removes a consumable type and its inventory, purchase and
// usage rows in one transaction. No ON DELETE CASCADE is assumed. Deleting a
// missing id succeeds (idempotent delete).
func (r *GormPantryRepository) DeleteConsumable(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("consumable_type_id = ?", id).Delete(&domain.Inventory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("consumable_type_id = ?", id).Delete(&domain.Purchase{}).Error; err != nil {
			return err
		}
		if err := tx.Where("consumable_type_id = ?", id).Delete(&domain.UsageLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.ConsumableType{}, id).Error
	})
	return wrapStorage(err)
}

func (r *GormPantryRepository) FindInventoryByConsumableID(consumableID uint) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.db.Where("consumable_type_id = ?", consumableID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("inventory", consumableID)
	}
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return &inv, nil
}

// SetInventory overwrites the current quantity and, when updateRate is set,
// the custom usage rate.
func (r *GormPantryRepository) SetInventory(consumableID uint, quantity float64, customRate *float64, updateRate bool) error {
	updates := map[string]interface{}{
		"current_quantity": quantity,
		"last_updated":     time.Now(),
	}
	if updateRate {
		updates["custom_usage_rate"] = customRate
	}

	result := r.db.Model(&domain.Inventory{}).
		Where("consumable_type_id = ?", consumableID).
		Updates(updates)
	if result.Error != nil {
		return domain.NewStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("inventory", consumableID)
	}
	return nil
}

// SetUsageRate sets or clears the custom usage rate override
func (r *GormPantryRepository) SetUsageRate(consumableID uint, rate *float64) error {
	result := r.db.Model(&domain.Inventory{}).
		Where("consumable_type_id = ?", consumableID).
		Updates(map[string]interface{}{
			"custom_usage_rate": rate,
			"last_updated":      time.Now(),
		})
	if result.Error != nil {
		return domain.NewStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("inventory", consumableID)
	}
	return nil
}

// CreatePurchase inserts the purchase record and increments the linked
// inventory quantity as one transactional unit.
func (r *GormPantryRepository) CreatePurchase(p *domain.Purchase) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ct domain.ConsumableType
		if err := tx.First(&ct, p.ConsumableTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("consumable", p.ConsumableTypeID)
			}
			return err
		}

		if err := tx.Create(p).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Inventory{}).
			Where("consumable_type_id = ?", p.ConsumableTypeID).
			Updates(map[string]interface{}{
				"current_quantity": gorm.Expr("current_quantity + ?", p.Quantity),
				"last_updated":     time.Now(),
			}).Error
	})
	return wrapStorage(err)
}

func (r *GormPantryRepository) FindPurchaseByID(id uint) (*domain.Purchase, error) {
	var p domain.Purchase
	err := r.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("purchase", id)
	}
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return &p, nil
}

func (r *GormPantryRepository) ListPurchases(consumableID uint, limit int) ([]domain.PurchaseWithConsumable, error) {
	q := r.db.Table("purchases").
		Select(`purchases.*,
			consumable_types.name AS consumable_name,
			consumable_types.unit AS unit`).
		Joins("JOIN consumable_types ON consumable_types.id = purchases.consumable_type_id").
		Order("purchases.purchase_date DESC").
		Limit(limit)

	if consumableID != 0 {
		q = q.Where("purchases.consumable_type_id = ?", consumableID)
	}

	var purchases []domain.PurchaseWithConsumable
	if err := q.Scan(&purchases).Error; err != nil {
		return nil, domain.NewStorageError(err)
	}
	return purchases, nil
}

// DeletePurchase reverses the purchase: it decrements the linked inventory by
// the recorded quantity and removes the row, as one transactional unit.
// Deleting a missing purchase succeeds without touching inventory.
func (r *GormPantryRepository) DeletePurchase(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var p domain.Purchase
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// Quantity may go negative when a manual edit happened between the
		// purchase and its reversal; left unclamped as a data signal.
		err := tx.Model(&domain.Inventory{}).
			Where("consumable_type_id = ?", p.ConsumableTypeID).
			Updates(map[string]interface{}{
				"current_quantity": gorm.Expr("current_quantity - ?", p.Quantity),
				"last_updated":     time.Now(),
			}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&domain.Purchase{}, id).Error
	})
	return wrapStorage(err)
}

func (r *GormPantryRepository) CreateUsageLog(u *domain.UsageLog) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ct domain.ConsumableType
		if err := tx.First(&ct, u.ConsumableTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("consumable", u.ConsumableTypeID)
			}
			return err
		}
		return tx.Create(u).Error
	})
	return wrapStorage(err)
}

func (r *GormPantryRepository) ListUsageLogs(consumableID uint, limit int) ([]domain.UsageLog, error) {
	q := r.db.Order("usage_date DESC").Limit(limit)
	if consumableID != 0 {
		q = q.Where("consumable_type_id = ?", consumableID)
	}

	var logs []domain.UsageLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, domain.NewStorageError(err)
	}
	return logs, nil
}

func (r *GormPantryRepository) CountNeedsPurchase() (int64, error) {
	var count int64
	err := r.db.Table("inventory").
		Joins("JOIN consumable_types ON consumable_types.id = inventory.consumable_type_id").
		Where("inventory.current_quantity <= consumable_types.min_stock_level").
		Count(&count).Error
	if err != nil {
		return 0, domain.NewStorageError(err)
	}
	return count, nil
}

func (r *GormPantryRepository) CountConsumables() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.ConsumableType{}).Count(&count).Error; err != nil {
		return 0, domain.NewStorageError(err)
	}
	return count, nil
}

func (r *GormPantryRepository) CountRecentPurchases(sinceDate string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Purchase{}).
		Where("purchase_date >= ?", sinceDate).
		Count(&count).Error
	if err != nil {
		return 0, domain.NewStorageError(err)
	}
	return count, nil
}

// ExportState reads the entire persisted state
func (r *GormPantryRepository) ExportState() (*domain.StateExport, error) {
	s := &domain.StateExport{
		Signature:  domain.StateSignature,
		Version:    domain.StateVersion,
		ExportedAt: time.Now(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id").Find(&s.Categories).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&s.ConsumableTypes).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&s.Inventory).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&s.Purchases).Error; err != nil {
			return err
		}
		return tx.Order("id").Find(&s.UsageLogs).Error
	})
	if err != nil {
		return nil, domain.NewStorageError(err)
	}
	return s, nil
}

// ImportState replaces the entire persisted state with the blob's contents.
// The replacement runs in one transaction; a failure leaves the previous
// state untouched.
func (r *GormPantryRepository) ImportState(s *domain.StateExport) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&domain.UsageLog{}, &domain.Purchase{}, &domain.Inventory{},
			&domain.ConsumableType{}, &domain.Category{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		if len(s.Categories) > 0 {
			if err := tx.Create(&s.Categories).Error; err != nil {
				return err
			}
		}
		if len(s.ConsumableTypes) > 0 {
			if err := tx.Create(&s.ConsumableTypes).Error; err != nil {
				return err
			}
		}
		if len(s.Inventory) > 0 {
			if err := tx.Create(&s.Inventory).Error; err != nil {
				return err
			}
		}
		if len(s.Purchases) > 0 {
			if err := tx.Create(&s.Purchases).Error; err != nil {
				return err
			}
		}
		if len(s.UsageLogs) > 0 {
			if err := tx.Create(&s.UsageLogs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return wrapStorage(err)
}

// wrapStorage wraps unexpected database errors in a StorageError while
// passing domain errors through unchanged.
func wrapStorage(err error) error {
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	var nfe *domain.NotFoundError
	var ce *domain.ConflictError
	var se *domain.StorageError
	if errors.As(err, &ve) || errors.As(err, &nfe) || errors.As(err, &ce) || errors.As(err, &se) {
		return err
	}
	return domain.NewStorageError(err)
}
