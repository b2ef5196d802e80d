package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/testutil"
	"github.com/shopspring/decimal"
)

func newMonthFixture(t *testing.T, persistViewMonth bool) (*MonthService, *testutil.MockStateRepository) {
	t.Helper()
	repo := testutil.NewMockStateRepository()
	repo.State = testutil.SeedState()
	repo.LoadErr = nil
	states := newBootstrappedService(t, repo)

	months := NewMonthService(states, persistViewMonth)
	months.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return months, repo
}

func TestCurrentMonth_RealMonthByDefault(t *testing.T) {
	months, _ := newMonthFixture(t, false)

	// The stored view month (2024-01 in the fixture) is ignored when the
	// persistence policy is off.
	if got := months.CurrentMonth(); got != (domain.MonthID{Year: 2024, Month: 6}) {
		t.Errorf("Expected real current month 2024-06, got %s", got)
	}
}

func TestCurrentMonth_StoredWhenPolicyEnabled(t *testing.T) {
	months, _ := newMonthFixture(t, true)

	if got := months.CurrentMonth(); got != (domain.MonthID{Year: 2024, Month: 1}) {
		t.Errorf("Expected stored month 2024-01, got %s", got)
	}
}

func TestCurrentMonth_PolicyEnabledButNothingStored(t *testing.T) {
	repo := testutil.NewMockStateRepository()
	seed := testutil.SeedState()
	seed.DataMonth = domain.MonthID{}
	repo.State = seed
	repo.LoadErr = nil
	states := newBootstrappedService(t, repo)

	months := NewMonthService(states, true)
	months.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	if got := months.CurrentMonth(); got != (domain.MonthID{Year: 2024, Month: 6}) {
		t.Errorf("Expected fallback to real month, got %s", got)
	}
}

func TestSetCurrentMonth_AlwaysPersisted(t *testing.T) {
	// Even with the policy off the month is stored; the policy only decides
	// whether it is honored on the next load.
	months, repo := newMonthFixture(t, false)

	target := domain.MonthID{Year: 2025, Month: 2}
	if err := months.SetCurrentMonth(target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if repo.State.DataMonth != target {
		t.Errorf("Expected data month persisted, got %s", repo.State.DataMonth)
	}
}

func TestShiftCurrentMonth(t *testing.T) {
	// The shift is relative to the stored viewing month (2024-01 in the
	// fixture) even with the persistence policy off.
	months, repo := newMonthFixture(t, false)

	got, err := months.ShiftCurrentMonth(-1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != (domain.MonthID{Year: 2023, Month: 12}) {
		t.Errorf("Expected 2023-12, got %s", got)
	}
	if repo.State.DataMonth != got {
		t.Errorf("Expected shifted month persisted, got %s", repo.State.DataMonth)
	}
}

func TestShiftCurrentMonth_ConsecutiveShiftsAccumulate(t *testing.T) {
	months, _ := newMonthFixture(t, false)

	first, err := months.ShiftCurrentMonth(-1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := months.ShiftCurrentMonth(-1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first != (domain.MonthID{Year: 2023, Month: 12}) {
		t.Errorf("Expected first shift to land on 2023-12, got %s", first)
	}
	if second != (domain.MonthID{Year: 2023, Month: 11}) {
		t.Errorf("Expected second shift to land on 2023-11, got %s", second)
	}
}

func TestShiftCurrentMonth_NothingStoredFallsBackToRealMonth(t *testing.T) {
	repo := testutil.NewMockStateRepository()
	seed := testutil.SeedState()
	seed.DataMonth = domain.MonthID{}
	repo.State = seed
	repo.LoadErr = nil
	states := newBootstrappedService(t, repo)

	months := NewMonthService(states, false)
	months.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	got, err := months.ShiftCurrentMonth(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != (domain.MonthID{Year: 2024, Month: 7}) {
		t.Errorf("Expected 2024-07, got %s", got)
	}
}

func TestSetIncome_StoresAndPersists(t *testing.T) {
	months, repo := newMonthFixture(t, false)
	month := domain.MonthID{Year: 2024, Month: 6}

	if err := months.SetIncome(month, decimal.NewFromInt(52000)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !repo.State.Incomes[month].Equal(decimal.NewFromInt(52000)) {
		t.Errorf("Expected income persisted, got %s", repo.State.Incomes[month])
	}
}

func TestSetIncome_ZeroRemovesEntry(t *testing.T) {
	months, repo := newMonthFixture(t, false)
	month := domain.MonthID{Year: 2024, Month: 6}

	months.SetIncome(month, decimal.NewFromInt(52000))
	if err := months.SetIncome(month, decimal.Zero); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := repo.State.Incomes[month]; ok {
		t.Error("Expected zero income to remove the entry")
	}
}

func TestSetIncome_NegativeRejected(t *testing.T) {
	months, _ := newMonthFixture(t, false)

	err := months.SetIncome(domain.MonthID{Year: 2024, Month: 6}, decimal.NewFromInt(-1))
	if !errors.Is(err, domain.ErrAmountNegative) {
		t.Errorf("Expected ErrAmountNegative, got %v", err)
	}
}

func TestSetSavings_StoresAndRemoves(t *testing.T) {
	months, repo := newMonthFixture(t, false)
	month := domain.MonthID{Year: 2024, Month: 6}

	if err := months.SetSavings(month, decimal.NewFromInt(10000)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !repo.State.Savings[month].Equal(decimal.NewFromInt(10000)) {
		t.Errorf("Expected savings persisted, got %s", repo.State.Savings[month])
	}

	months.SetSavings(month, decimal.Zero)
	if _, ok := repo.State.Savings[month]; ok {
		t.Error("Expected zero savings to remove the entry")
	}
}

func TestSetSavings_NegativeRejected(t *testing.T) {
	months, _ := newMonthFixture(t, false)

	err := months.SetSavings(domain.MonthID{Year: 2024, Month: 6}, decimal.NewFromInt(-100))
	if !errors.Is(err, domain.ErrAmountNegative) {
		t.Errorf("Expected ErrAmountNegative, got %v", err)
	}
}
