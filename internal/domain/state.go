package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SchemaVersion is the current persisted document schema version
const SchemaVersion = 1

// State is the full application state: the cost catalog, per-month income and
// savings figures, the payment ledger, and the last-viewed month.
type State struct {
	SchemaVersion int
	Costs         []CostDefinition
	Incomes       map[MonthID]decimal.Decimal
	Savings       map[MonthID]decimal.Decimal
	Ledger        Ledger
	DataMonth     MonthID // zero when no viewing month has been stored
}

// StateRepository loads and saves the full application state as a single
// document. Load returns ErrNotFound when nothing has been persisted yet,
// ErrInvalidFormat when the persisted document cannot be decoded, and
// ErrStorageUnavailable when the underlying store cannot be reached.
type StateRepository interface {
	Load() (*State, error)
	Save(state *State) error
}

// NewState returns an empty state with initialized collections
func NewState() *State {
	return &State{
		SchemaVersion: SchemaVersion,
		Incomes:       make(map[MonthID]decimal.Decimal),
		Savings:       make(map[MonthID]decimal.Decimal),
		Ledger:        NewLedger(),
	}
}

// DefaultState returns the seed dataset used on first run and after a reset
func DefaultState(now time.Time) *State {
	start := MonthID{Year: 2024, Month: 1}
	image := func(domainName string) *string {
		url := "https://www.google.com/s2/favicons?domain=" + domainName + "&sz=128"
		return &url
	}
	costs := []CostDefinition{
		{
			ID:          uuid.New(),
			Name:        "Car installment",
			Amount:      decimal.NewFromInt(15400),
			Category:    CategoryNecessary,
			Frequency:   FrequencyMonthly,
			DueDay:      1,
			StartMonth:  start,
			IsLimited:   true,
			TotalMonths: 48,
			Image:       image("toyota.co.th"),
		},
		{
			ID:         uuid.New(),
			Name:       "Home internet",
			Amount:     decimal.NewFromInt(599),
			Category:   CategoryNecessary,
			Frequency:  FrequencyMonthly,
			DueDay:     5,
			StartMonth: start,
			Image:      image("true.th"),
		},
		{
			ID:         uuid.New(),
			Name:       "Netflix",
			Amount:     decimal.NewFromInt(169),
			Category:   CategoryLuxury,
			Frequency:  FrequencyMonthly,
			DueDay:     1,
			StartMonth: start,
			Image:      image("netflix.com"),
		},
		{
			ID:         uuid.New(),
			Name:       "Car insurance",
			Amount:     decimal.NewFromInt(12000),
			Category:   CategoryNecessary,
			Frequency:  FrequencyYearly,
			DueDay:     1,
			DueMonth:   5,
			StartMonth: start,
		},
	}
	for i := range costs {
		costs[i].SortIndex = i
		costs[i].CreatedAt = now
		costs[i].UpdatedAt = now
	}

	state := NewState()
	state.Costs = costs
	state.DataMonth = MonthIDFromTime(now)
	return state
}

// CostByID returns a pointer into the catalog and the cost's position
func (s *State) CostByID(id uuid.UUID) (*CostDefinition, int, bool) {
	for i := range s.Costs {
		if s.Costs[i].ID == id {
			return &s.Costs[i], i, true
		}
	}
	return nil, 0, false
}

// NextSortIndex returns the sort index for a newly appended cost
func (s *State) NextSortIndex() int {
	next := 0
	for i := range s.Costs {
		if s.Costs[i].SortIndex >= next {
			next = s.Costs[i].SortIndex + 1
		}
	}
	return next
}

// SortCatalog orders the catalog by its explicit sort indexes. Mutators keep
// the catalog sorted so readers never have to reorder it.
func (s *State) SortCatalog() {
	sort.SliceStable(s.Costs, func(i, j int) bool {
		return s.Costs[i].SortIndex < s.Costs[j].SortIndex
	})
}

// IncomeFor returns the income recorded for a month; absent entries are zero
func (s *State) IncomeFor(month MonthID) decimal.Decimal {
	return s.Incomes[month]
}

// SavingsFor returns the savings recorded for a month; absent entries are zero
func (s *State) SavingsFor(month MonthID) decimal.Decimal {
	return s.Savings[month]
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	out := &State{
		SchemaVersion: s.SchemaVersion,
		Costs:         make([]CostDefinition, len(s.Costs)),
		Incomes:       make(map[MonthID]decimal.Decimal, len(s.Incomes)),
		Savings:       make(map[MonthID]decimal.Decimal, len(s.Savings)),
		Ledger:        s.Ledger.Clone(),
		DataMonth:     s.DataMonth,
	}
	copy(out.Costs, s.Costs)
	for m, v := range s.Incomes {
		out.Incomes[m] = v
	}
	for m, v := range s.Savings {
		out.Savings[m] = v
	}
	return out
}
