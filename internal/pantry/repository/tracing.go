package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

var tracer = otel.Tracer("pantry-repository")

// GormPantryRepositoryWithTracing wraps GormPantryRepository with tracing
type GormPantryRepositoryWithTracing struct {
	*GormPantryRepository
}

// NewGormPantryRepositoryWithTracing creates a new repository with tracing
func NewGormPantryRepositoryWithTracing(db *gorm.DB) *GormPantryRepositoryWithTracing {
	return &GormPantryRepositoryWithTracing{
		GormPantryRepository: NewGormPantryRepository(db),
	}
}

// CreateConsumable with tracing
func (r *GormPantryRepositoryWithTracing) CreateConsumableWithContext(ctx context.Context, ct *domain.ConsumableType) error {
	_, span := tracer.Start(ctx, "repository.CreateConsumable",
		trace.WithAttributes(
			attribute.Int("consumable.category_id", int(ct.CategoryID)),
			attribute.String("consumable.name", ct.Name),
		),
	)
	defer span.End()

	err := r.GormPantryRepository.CreateConsumable(ct)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("consumable.id", int(ct.ID)))
	return nil
}

// ListConsumables with tracing
func (r *GormPantryRepositoryWithTracing) ListConsumablesWithContext(ctx context.Context, categoryID uint) ([]domain.ConsumableWithInventory, error) {
	_, span := tracer.Start(ctx, "repository.ListConsumables",
		trace.WithAttributes(
			attribute.Int("query.category_id", int(categoryID)),
		),
	)
	defer span.End()

	items, err := r.GormPantryRepository.ListConsumables(categoryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// SetInventory with tracing
func (r *GormPantryRepositoryWithTracing) SetInventoryWithContext(ctx context.Context, consumableID uint, quantity float64, customRate *float64, updateRate bool) error {
	_, span := tracer.Start(ctx, "repository.SetInventory",
		trace.WithAttributes(
			attribute.Int("inventory.consumable_id", int(consumableID)),
			attribute.Float64("inventory.quantity", quantity),
			attribute.Bool("inventory.update_rate", updateRate),
		),
	)
	defer span.End()

	err := r.GormPantryRepository.SetInventory(consumableID, quantity, customRate, updateRate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// CreatePurchase with tracing
func (r *GormPantryRepositoryWithTracing) CreatePurchaseWithContext(ctx context.Context, p *domain.Purchase) error {
	_, span := tracer.Start(ctx, "repository.CreatePurchase",
		trace.WithAttributes(
			attribute.Int("purchase.consumable_id", int(p.ConsumableTypeID)),
			attribute.Float64("purchase.quantity", p.Quantity),
			attribute.String("purchase.date", p.PurchaseDate),
		),
	)
	defer span.End()

	err := r.GormPantryRepository.CreatePurchase(p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("purchase.id", int(p.ID)))
	return nil
}

// DeletePurchase with tracing
func (r *GormPantryRepositoryWithTracing) DeletePurchaseWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.DeletePurchase",
		trace.WithAttributes(
			attribute.Int("purchase.id", int(id)),
		),
	)
	defer span.End()

	err := r.GormPantryRepository.DeletePurchase(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// ExportState with tracing
func (r *GormPantryRepositoryWithTracing) ExportStateWithContext(ctx context.Context) (*domain.StateExport, error) {
	_, span := tracer.Start(ctx, "repository.ExportState")
	defer span.End()

	state, err := r.GormPantryRepository.ExportState()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("export.consumables", len(state.ConsumableTypes)),
		attribute.Int("export.purchases", len(state.Purchases)),
	)
	return state, nil
}

// ImportState with tracing
func (r *GormPantryRepositoryWithTracing) ImportStateWithContext(ctx context.Context, s *domain.StateExport) error {
	_, span := tracer.Start(ctx, "repository.ImportState",
		trace.WithAttributes(
			attribute.String("import.export_id", s.ExportID),
			attribute.Int("import.consumables", len(s.ConsumableTypes)),
		),
	)
	defer span.End()

	err := r.GormPantryRepository.ImportState(s)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
