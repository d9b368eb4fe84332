// Package validation holds the stateless field validators applied to every
// create and update input before it reaches the ledger store. Each validator
// returns either a usable value or a field-specific ValidationError, never
// both; callers short-circuit on the first failure.
package validation

import (
	"strings"
	"time"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
)

const maxStringLength = 255

// Number validates a numeric field. A nil value is rejected when required.
// Non-positive values are rejected unless allowZero is set, in which case
// only negatives are rejected.
func Number(field string, value *float64, required, allowZero bool) (*float64, error) {
	if value == nil {
		if required {
			return nil, domain.NewValidationError(field, "is required")
		}
		return nil, nil
	}
	if allowZero {
		if *value < 0 {
			return nil, domain.NewValidationError(field, "cannot be negative")
		}
	} else if *value <= 0 {
		return nil, domain.NewValidationError(field, "must be greater than zero")
	}
	return value, nil
}

// String validates a text field: surrounding whitespace is trimmed, empty
// input is rejected when required, and length is capped at 255 characters.
func String(field string, value *string, required bool) (string, error) {
	if value == nil {
		if required {
			return "", domain.NewValidationError(field, "is required")
		}
		return "", nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" && required {
		return "", domain.NewValidationError(field, "cannot be empty")
	}
	if len(trimmed) > maxStringLength {
		return "", domain.NewValidationError(field, "must be at most 255 characters")
	}
	return trimmed, nil
}

// Period validates a usage rate period, defaulting to weekly when absent
func Period(field string, value *string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return domain.PeriodWeek, nil
	}
	period := strings.TrimSpace(*value)
	switch period {
	case domain.PeriodDay, domain.PeriodWeek, domain.PeriodMonth:
		return period, nil
	}
	return "", domain.NewValidationError(field, "must be one of day, week, month")
}

// Date validates a YYYY-MM-DD date field, defaulting to today when absent
func Date(field string, value *string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	date := strings.TrimSpace(*value)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return date, nil
}

// ID validates a referenced entity id
func ID(field string, value uint) (uint, error) {
	if value == 0 {
		return 0, domain.NewValidationError(field, "is required")
	}
	return value, nil
}
