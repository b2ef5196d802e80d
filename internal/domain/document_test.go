package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestStateDocument_RoundTrip(t *testing.T) {
	state := NewState()
	costID := uuid.New()
	state.Costs = []CostDefinition{
		{
			ID:         costID,
			Name:       "Netflix",
			Amount:     decimal.NewFromInt(169),
			Category:   CategoryLuxury,
			Frequency:  FrequencyMonthly,
			DueDay:     1,
			StartMonth: MonthID{Year: 2024, Month: 1},
			SortIndex:  0,
		},
	}
	month := MonthID{Year: 2024, Month: 3}
	state.Ledger.Set(costID, month, PaymentRecord{Paid: true, PaidAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)})
	state.Incomes[month] = decimal.NewFromInt(50000)
	state.Savings[month] = decimal.NewFromInt(10000)
	state.DataMonth = month

	data, err := json.Marshal(state.Document())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var doc StateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rebuilt := StateFromDocument(&doc)
	if len(rebuilt.Costs) != 1 {
		t.Fatalf("Expected 1 cost, got %d", len(rebuilt.Costs))
	}
	if rebuilt.Costs[0].ID != costID {
		t.Errorf("Expected id %s preserved, got %s", costID, rebuilt.Costs[0].ID)
	}
	if !rebuilt.Ledger.IsPaid(costID, month) {
		t.Error("Expected payment history to survive the round trip")
	}
	if !rebuilt.Incomes[month].Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Expected income 50000, got %s", rebuilt.Incomes[month])
	}
	if rebuilt.DataMonth != month {
		t.Errorf("Expected data month %s, got %s", month, rebuilt.DataMonth)
	}
}

func TestStateDocument_OrderedBySortIndex(t *testing.T) {
	state := NewState()
	state.Costs = []CostDefinition{
		{ID: uuid.New(), Name: "Second", SortIndex: 1},
		{ID: uuid.New(), Name: "First", SortIndex: 0},
	}

	doc := state.Document()
	if doc.Costs[0].Name != "First" || doc.Costs[1].Name != "Second" {
		t.Errorf("Expected costs ordered by sort index, got %s, %s", doc.Costs[0].Name, doc.Costs[1].Name)
	}
}

func TestStateFromDocument_AssignsSortIndexFromPosition(t *testing.T) {
	doc := &StateDocument{
		Costs: []StoredCost{
			{ID: CostKey(uuid.New().String()), Name: "A"},
			{ID: CostKey(uuid.New().String()), Name: "B"},
		},
	}

	state := StateFromDocument(doc)
	if state.Costs[0].SortIndex != 0 || state.Costs[1].SortIndex != 1 {
		t.Errorf("Expected sort indexes 0,1, got %d,%d", state.Costs[0].SortIndex, state.Costs[1].SortIndex)
	}
	if state.SchemaVersion != SchemaVersion {
		t.Errorf("Expected schema version %d for legacy document, got %d", SchemaVersion, state.SchemaVersion)
	}
}

func TestCostKey_AcceptsLegacyNumericIDs(t *testing.T) {
	raw := []byte(`{
		"costs": [
			{"id": 1735689600000, "name": "Old export", "amount": "100", "category": "daily", "dueDay": 3, "startMonth": "2023-06", "history": {"2023-07": {"paid": true, "paidAt": "2023-07-03T10:00:00Z"}}}
		],
		"incomes": {},
		"savings": {}
	}`)

	var doc StateDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	state := StateFromDocument(&doc)
	if len(state.Costs) != 1 {
		t.Fatalf("Expected 1 cost, got %d", len(state.Costs))
	}
	cost := state.Costs[0]
	if cost.ID == uuid.Nil {
		t.Error("Expected a fresh UUID for a numeric legacy id")
	}
	if cost.Frequency != FrequencyMonthly {
		t.Errorf("Expected absent frequency to default to monthly, got %s", cost.Frequency)
	}
	if !state.Ledger.IsPaid(cost.ID, MonthID{Year: 2023, Month: 7}) {
		t.Error("Expected legacy history folded into the ledger under the new id")
	}
}

func TestCostKey_RejectsNonScalar(t *testing.T) {
	var key CostKey
	if err := json.Unmarshal([]byte(`{"nested": true}`), &key); err == nil {
		t.Error("Expected error for object-valued id")
	}
}

func TestDefaultState_Seed(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	state := DefaultState(now)

	if len(state.Costs) != 4 {
		t.Fatalf("Expected 4 seed costs, got %d", len(state.Costs))
	}
	if state.DataMonth != (MonthID{Year: 2024, Month: 6}) {
		t.Errorf("Expected data month 2024-06, got %s", state.DataMonth)
	}
	for i, cost := range state.Costs {
		if cost.SortIndex != i {
			t.Errorf("Cost %d: expected sort index %d, got %d", i, i, cost.SortIndex)
		}
		if err := cost.Validate(); err != nil {
			t.Errorf("Seed cost %q failed validation: %v", cost.Name, err)
		}
	}
}
