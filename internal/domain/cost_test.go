package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func validCost() CostDefinition {
	return CostDefinition{
		ID:         uuid.New(),
		Name:       "Home internet",
		Amount:     decimal.NewFromInt(599),
		Category:   CategoryNecessary,
		Frequency:  FrequencyMonthly,
		DueDay:     5,
		StartMonth: MonthID{Year: 2024, Month: 1},
	}
}

func TestCostValidate_Success(t *testing.T) {
	cost := validCost()
	if err := cost.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestCostValidate_EmptyName(t *testing.T) {
	cost := validCost()
	cost.Name = "   "
	if err := cost.Validate(); !errors.Is(err, ErrCostNameEmpty) {
		t.Errorf("Expected ErrCostNameEmpty, got %v", err)
	}
}

func TestCostValidate_NameTooLong(t *testing.T) {
	cost := validCost()
	cost.Name = strings.Repeat("x", MaxCostNameLength+1)
	if err := cost.Validate(); !errors.Is(err, ErrCostNameTooLong) {
		t.Errorf("Expected ErrCostNameTooLong, got %v", err)
	}
}

func TestCostValidate_NegativeAmount(t *testing.T) {
	cost := validCost()
	cost.Amount = decimal.NewFromInt(-1)
	if err := cost.Validate(); !errors.Is(err, ErrCostAmountNegative) {
		t.Errorf("Expected ErrCostAmountNegative, got %v", err)
	}
}

func TestCostValidate_ZeroAmountAllowed(t *testing.T) {
	cost := validCost()
	cost.Amount = decimal.Zero
	if err := cost.Validate(); err != nil {
		t.Errorf("Expected zero amount to be valid, got %v", err)
	}
}

func TestCostValidate_InvalidCategory(t *testing.T) {
	cost := validCost()
	cost.Category = "entertainment"
	if err := cost.Validate(); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("Expected ErrInvalidCategory, got %v", err)
	}
}

func TestCostValidate_InvalidFrequency(t *testing.T) {
	cost := validCost()
	cost.Frequency = "weekly"
	if err := cost.Validate(); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("Expected ErrInvalidFrequency, got %v", err)
	}
}

func TestCostValidate_DueDayOutOfRange(t *testing.T) {
	for _, day := range []int{0, 32, -1} {
		cost := validCost()
		cost.DueDay = day
		if err := cost.Validate(); !errors.Is(err, ErrInvalidDueDay) {
			t.Errorf("Due day %d: expected ErrInvalidDueDay, got %v", day, err)
		}
	}
}

func TestCostValidate_DueDay31Allowed(t *testing.T) {
	// Day 31 is valid even though not every month has one; calendar
	// placement clamps it to the month's last day.
	cost := validCost()
	cost.DueDay = 31
	if err := cost.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestCostValidate_YearlyRequiresDueMonth(t *testing.T) {
	cost := validCost()
	cost.Frequency = FrequencyYearly
	cost.DueMonth = 0
	if err := cost.Validate(); !errors.Is(err, ErrInvalidDueMonth) {
		t.Errorf("Expected ErrInvalidDueMonth, got %v", err)
	}

	cost.DueMonth = 5
	if err := cost.Validate(); err != nil {
		t.Errorf("Expected no error with due month set, got %v", err)
	}
}

func TestCostValidate_LimitedRequiresTotalMonths(t *testing.T) {
	cost := validCost()
	cost.IsLimited = true
	cost.TotalMonths = 0
	if err := cost.Validate(); !errors.Is(err, ErrInvalidTotalMonths) {
		t.Errorf("Expected ErrInvalidTotalMonths, got %v", err)
	}
}

func TestCostValidate_StartMonthRequired(t *testing.T) {
	cost := validCost()
	cost.StartMonth = MonthID{}
	if err := cost.Validate(); !errors.Is(err, ErrStartMonthRequired) {
		t.Errorf("Expected ErrStartMonthRequired, got %v", err)
	}
}

func TestActiveIn_MonthlyFromStart(t *testing.T) {
	cost := validCost()

	if cost.ActiveIn(MonthID{Year: 2023, Month: 12}) {
		t.Error("Expected inactive before start month")
	}
	if !cost.ActiveIn(MonthID{Year: 2024, Month: 1}) {
		t.Error("Expected active in start month")
	}
	if !cost.ActiveIn(MonthID{Year: 2030, Month: 7}) {
		t.Error("Expected unlimited monthly cost active indefinitely")
	}
}

func TestActiveIn_YearlyOnlyInDueMonth(t *testing.T) {
	cost := validCost()
	cost.Frequency = FrequencyYearly
	cost.DueMonth = 5

	if cost.ActiveIn(MonthID{Year: 2024, Month: 4}) {
		t.Error("Expected inactive outside due month")
	}
	if !cost.ActiveIn(MonthID{Year: 2024, Month: 5}) {
		t.Error("Expected active in due month")
	}
	if !cost.ActiveIn(MonthID{Year: 2026, Month: 5}) {
		t.Error("Expected active in due month of a later year")
	}
	if cost.ActiveIn(MonthID{Year: 2023, Month: 5}) {
		t.Error("Expected inactive in due month before start")
	}
}

func TestActiveIn_LimitedSeriesEnds(t *testing.T) {
	cost := validCost()
	cost.IsLimited = true
	cost.TotalMonths = 48

	// 48 installments starting 2024-01 run through 2027-12.
	if !cost.ActiveIn(MonthID{Year: 2024, Month: 1}) {
		t.Error("Expected active in first installment month")
	}
	if !cost.ActiveIn(MonthID{Year: 2027, Month: 12}) {
		t.Error("Expected active in final installment month")
	}
	if cost.ActiveIn(MonthID{Year: 2028, Month: 1}) {
		t.Error("Expected inactive after the series ends")
	}
}

func TestInstallment_Progression(t *testing.T) {
	cost := validCost()
	cost.Amount = decimal.NewFromInt(15400)
	cost.IsLimited = true
	cost.TotalMonths = 48

	info, ok := cost.Installment(MonthID{Year: 2024, Month: 1})
	if !ok {
		t.Fatal("Expected installment info for limited cost")
	}
	if info.Current != 1 || info.Total != 48 {
		t.Errorf("Expected 1/48, got %d/%d", info.Current, info.Total)
	}
	if !info.RemainingDebt.Equal(decimal.NewFromInt(48 * 15400)) {
		t.Errorf("Expected remaining debt 739200, got %s", info.RemainingDebt)
	}

	info, _ = cost.Installment(MonthID{Year: 2024, Month: 12})
	if info.Current != 12 {
		t.Errorf("Expected installment 12, got %d", info.Current)
	}
	if !info.RemainingDebt.Equal(decimal.NewFromInt(37 * 15400)) {
		t.Errorf("Expected remaining debt 569800, got %s", info.RemainingDebt)
	}
}

func TestInstallment_ClampsAtFinal(t *testing.T) {
	cost := validCost()
	cost.IsLimited = true
	cost.TotalMonths = 48

	info, ok := cost.Installment(MonthID{Year: 2030, Month: 6})
	if !ok {
		t.Fatal("Expected installment info for limited cost")
	}
	if info.Current != 48 || info.Total != 48 {
		t.Errorf("Expected clamp to 48/48, got %d/%d", info.Current, info.Total)
	}
	if !info.RemainingDebt.Equal(cost.Amount) {
		t.Errorf("Expected one installment of debt at clamp, got %s", info.RemainingDebt)
	}
}

func TestInstallment_UnlimitedCost(t *testing.T) {
	cost := validCost()
	if _, ok := cost.Installment(MonthID{Year: 2024, Month: 6}); ok {
		t.Error("Expected no installment info for unlimited cost")
	}
}
