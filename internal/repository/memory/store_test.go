package memory

import (
	"errors"
	"testing"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
)

func TestStore_LoadBeforeSave(t *testing.T) {
	store := New()

	if _, err := store.Load(); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestStore_RoundTripIsIsolated(t *testing.T) {
	store := New()

	state := domain.NewState()
	state.DataMonth = domain.MonthID{Year: 2024, Month: 5}
	if err := store.Save(state); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Mutations after save must not leak into the store.
	state.DataMonth = domain.MonthID{Year: 2030, Month: 1}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loaded.DataMonth != (domain.MonthID{Year: 2024, Month: 5}) {
		t.Errorf("Expected stored snapshot, got %s", loaded.DataMonth)
	}

	// And mutations of the loaded copy must not leak back.
	loaded.DataMonth = domain.MonthID{Year: 2031, Month: 1}
	again, _ := store.Load()
	if again.DataMonth != (domain.MonthID{Year: 2024, Month: 5}) {
		t.Errorf("Expected store unaffected by loaded copy, got %s", again.DataMonth)
	}
}
