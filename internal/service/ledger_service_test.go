package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/testutil"
	"github.com/google/uuid"
)

func TestTogglePaid_MarksAndStamps(t *testing.T) {
	cost := testutil.MakeCost("Netflix", 169, domain.CategoryLuxury, domain.MonthID{Year: 2024, Month: 1})
	repo := testutil.NewMockStateRepository()
	repo.State = testutil.SeedState(cost)
	repo.LoadErr = nil
	states := newBootstrappedService(t, repo)

	ledger := NewLedgerService(states)
	at := time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC)
	ledger.now = func() time.Time { return at }
	month := domain.MonthID{Year: 2024, Month: 3}

	record, err := ledger.TogglePaid(cost.ID, month)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !record.Paid {
		t.Error("Expected first toggle to mark paid")
	}
	if !record.PaidAt.Equal(at) {
		t.Errorf("Expected PaidAt %v, got %v", at, record.PaidAt)
	}
	if !repo.State.Ledger.IsPaid(cost.ID, month) {
		t.Error("Expected toggle persisted")
	}
}

func TestTogglePaid_TwiceRestoresUnpaid(t *testing.T) {
	cost := testutil.MakeCost("Netflix", 169, domain.CategoryLuxury, domain.MonthID{Year: 2024, Month: 1})
	repo := testutil.NewMockStateRepository()
	repo.State = testutil.SeedState(cost)
	repo.LoadErr = nil
	states := newBootstrappedService(t, repo)
	ledger := NewLedgerService(states)
	month := domain.MonthID{Year: 2024, Month: 3}

	ledger.TogglePaid(cost.ID, month)
	record, err := ledger.TogglePaid(cost.ID, month)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if record.Paid {
		t.Error("Expected second toggle to mark unpaid")
	}
}

func TestTogglePaid_InactiveMonthAllowed(t *testing.T) {
	// A yearly cost can be marked paid outside its due month; the ledger is
	// not gated on activation.
	cost := testutil.MakeYearlyCost("Insurance", 12000, domain.MonthID{Year: 2024, Month: 1}, 5)
	repo := testutil.NewMockStateRepository()
	repo.State = testutil.SeedState(cost)
	repo.LoadErr = nil
	states := newBootstrappedService(t, repo)
	ledger := NewLedgerService(states)

	record, err := ledger.TogglePaid(cost.ID, domain.MonthID{Year: 2024, Month: 8})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !record.Paid {
		t.Error("Expected toggle to succeed in a non-due month")
	}
}

func TestTogglePaid_UnknownCost(t *testing.T) {
	repo := testutil.NewMockStateRepository()
	states := newBootstrappedService(t, repo)
	ledger := NewLedgerService(states)

	if _, err := ledger.TogglePaid(uuid.New(), domain.MonthID{Year: 2024, Month: 3}); !errors.Is(err, domain.ErrCostNotFound) {
		t.Errorf("Expected ErrCostNotFound, got %v", err)
	}
}
