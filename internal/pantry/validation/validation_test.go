package validation_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eh112358/home-inventory-dashboard/internal/pantry/domain"
	"github.com/eh112358/home-inventory-dashboard/internal/pantry/validation"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != field {
		t.Fatalf("validation error field = %q, want %q", ve.Field, field)
	}
}

func TestNumberRequired(t *testing.T) {
	t.Parallel()

	if _, err := validation.Number("quantity", nil, true, false); err == nil {
		t.Fatal("expected error for missing required number")
	} else {
		assertValidationError(t, err, "quantity")
	}

	v, err := validation.Number("quantity", nil, false, false)
	if err != nil || v != nil {
		t.Fatalf("optional missing number: got %v, %v", v, err)
	}
}

func TestNumberBoundaries(t *testing.T) {
	t.Parallel()

	if _, err := validation.Number("quantity", floatPtr(0), true, false); err == nil {
		t.Error("zero should be rejected when zero is not allowed")
	}
	if _, err := validation.Number("quantity", floatPtr(-1), true, true); err == nil {
		t.Error("negative should be rejected even when zero is allowed")
	}
	if v, err := validation.Number("quantity", floatPtr(0), true, true); err != nil || *v != 0 {
		t.Errorf("zero with allowZero: got %v, %v", v, err)
	}
	if v, err := validation.Number("quantity", floatPtr(0.0001), true, false); err != nil || *v != 0.0001 {
		t.Errorf("small positive value: got %v, %v", v, err)
	}
}

func TestStringTrimAndLength(t *testing.T) {
	t.Parallel()

	got, err := validation.String("name", strPtr("  Paper Towels  "), true)
	if err != nil {
		t.Fatalf("trim: %v", err)
	}
	if got != "Paper Towels" {
		t.Errorf("trimmed value = %q", got)
	}

	if _, err := validation.String("name", strPtr("   "), true); err == nil {
		t.Error("whitespace-only required string should be rejected")
	}
	if _, err := validation.String("name", nil, true); err == nil {
		t.Error("missing required string should be rejected")
	}

	long := strings.Repeat("x", 256)
	if _, err := validation.String("name", &long, true); err == nil {
		t.Error("256-character string should be rejected")
	}
	exact := strings.Repeat("x", 255)
	if _, err := validation.String("name", &exact, true); err != nil {
		t.Errorf("255-character string should pass: %v", err)
	}
}

func TestPeriodDefaultsAndValidates(t *testing.T) {
	t.Parallel()

	if p, err := validation.Period("usage_rate_period", nil); err != nil || p != domain.PeriodWeek {
		t.Errorf("missing period: got %q, %v", p, err)
	}
	if p, err := validation.Period("usage_rate_period", strPtr("")); err != nil || p != domain.PeriodWeek {
		t.Errorf("empty period: got %q, %v", p, err)
	}
	for _, valid := range []string{"day", "week", "month"} {
		if p, err := validation.Period("usage_rate_period", &valid); err != nil || p != valid {
			t.Errorf("period %q: got %q, %v", valid, p, err)
		}
	}
	if _, err := validation.Period("usage_rate_period", strPtr("year")); err == nil {
		t.Error("unknown period should be rejected")
	}
}

func TestDateDefaultsToToday(t *testing.T) {
	t.Parallel()

	today := time.Now().Format("2006-01-02")
	if d, err := validation.Date("purchase_date", nil); err != nil || d != today {
		t.Errorf("missing date: got %q, %v", d, err)
	}

	if d, err := validation.Date("purchase_date", strPtr("2026-08-15")); err != nil || d != "2026-08-15" {
		t.Errorf("valid date: got %q, %v", d, err)
	}
	if _, err := validation.Date("purchase_date", strPtr("15/08/2026")); err == nil {
		t.Error("non-ISO date should be rejected")
	}
	if _, err := validation.Date("purchase_date", strPtr("2026-13-40")); err == nil {
		t.Error("impossible date should be rejected")
	}
}

func TestIDRejectsZero(t *testing.T) {
	t.Parallel()

	if _, err := validation.ID("category_id", 0); err == nil {
		t.Fatal("zero id should be rejected")
	}
	if id, err := validation.ID("category_id", 3); err != nil || id != 3 {
		t.Errorf("valid id: got %v, %v", id, err)
	}
}
