package command

import (
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

// LogUsageCommand represents the command to record actual consumption.
// Entries feed future rate tuning; the estimator does not read them and the
// current quantity is not changed.
type LogUsageCommand struct {
	ConsumableTypeID uint
	QuantityUsed     *float64
	UsageDate        *string
	Notes            *string
}

// LogUsageHandler handles usage logging
type LogUsageHandler struct {
	repo domain.PantryRepository
}

// NewLogUsageHandler creates a new log usage handler
func NewLogUsageHandler(repo domain.PantryRepository) *LogUsageHandler {
	return &LogUsageHandler{repo: repo}
}

// Handle executes the log usage command
func (h *LogUsageHandler) Handle(cmd LogUsageCommand) (*domain.UsageLog, error) {
	id, err := validation.ID("consumable_type_id", cmd.ConsumableTypeID)
	if err != nil {
		return nil, err
	}
	quantity, err := validation.Number("quantity_used", cmd.QuantityUsed, true, false)
	if err != nil {
		return nil, err
	}
	date, err := validation.Date("usage_date", cmd.UsageDate)
	if err != nil {
		return nil, err
	}
	notes, err := validation.String("notes", cmd.Notes, false)
	if err != nil {
		return nil, err
	}

	entry := &domain.UsageLog{
		ConsumableTypeID: id,
		QuantityUsed:     *quantity,
		UsageDate:        date,
		Notes:            notes,
	}

	if err := h.repo.CreateUsageLog(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
