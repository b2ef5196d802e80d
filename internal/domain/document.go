package domain

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostKey is a cost identifier as it appears on the wire. Older exports used
// numeric ids, so both JSON strings and numbers are accepted; anything that
// does not parse as a UUID is replaced with a fresh one on load.
type CostKey string

func (k *CostKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = CostKey(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*k = CostKey(n.String())
		return nil
	}
	return fmt.Errorf("%w: cost id must be a string or a number", ErrInvalidFormat)
}

// UUID resolves the key to a UUID, generating a fresh one for legacy or
// missing identifiers
func (k CostKey) UUID() uuid.UUID {
	if id, err := uuid.Parse(string(k)); err == nil {
		return id
	}
	return uuid.New()
}

// StoredCost is the wire form of a cost definition with its payment history
// embedded per month, matching the persisted document layout. Catalog order
// is the array order; explicit sort indexes exist only in memory.
type StoredCost struct {
	ID          CostKey                   `json:"id"`
	Name        string                    `json:"name"`
	Amount      decimal.Decimal           `json:"amount"`
	Category    Category                  `json:"category"`
	Frequency   Frequency                 `json:"frequency,omitempty"`
	DueDay      int                       `json:"dueDay"`
	DueMonth    int                       `json:"dueMonth,omitempty"`
	StartMonth  MonthID                   `json:"startMonth"`
	IsLimited   bool                      `json:"isLimited,omitempty"`
	TotalMonths int                       `json:"totalMonths,omitempty"`
	Image       *string                   `json:"image,omitempty"`
	History     map[MonthID]PaymentRecord `json:"history"`
}

// StateDocument is the persisted single-document form of the full state
type StateDocument struct {
	SchemaVersion int                         `json:"schemaVersion"`
	Costs         []StoredCost                `json:"costs"`
	Incomes       map[MonthID]decimal.Decimal `json:"incomes"`
	Savings       map[MonthID]decimal.Decimal `json:"savings"`
	DataMonth     *MonthID                    `json:"dataMonth,omitempty"`
}

// Document converts the state into its wire form, embedding ledger entries
// into each cost's history
func (s *State) Document() *StateDocument {
	doc := &StateDocument{
		SchemaVersion: s.SchemaVersion,
		Costs:         make([]StoredCost, 0, len(s.Costs)),
		Incomes:       make(map[MonthID]decimal.Decimal, len(s.Incomes)),
		Savings:       make(map[MonthID]decimal.Decimal, len(s.Savings)),
	}
	if doc.SchemaVersion == 0 {
		doc.SchemaVersion = SchemaVersion
	}

	ordered := make([]CostDefinition, len(s.Costs))
	copy(ordered, s.Costs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortIndex < ordered[j].SortIndex
	})

	for i := range ordered {
		c := &ordered[i]
		doc.Costs = append(doc.Costs, StoredCost{
			ID:          CostKey(c.ID.String()),
			Name:        c.Name,
			Amount:      c.Amount,
			Category:    c.Category,
			Frequency:   c.Frequency,
			DueDay:      c.DueDay,
			DueMonth:    c.DueMonth,
			StartMonth:  c.StartMonth,
			IsLimited:   c.IsLimited,
			TotalMonths: c.TotalMonths,
			Image:       c.Image,
			History:     s.Ledger.History(c.ID),
		})
	}
	for m, v := range s.Incomes {
		doc.Incomes[m] = v
	}
	for m, v := range s.Savings {
		doc.Savings[m] = v
	}
	if !s.DataMonth.IsZero() {
		month := s.DataMonth
		doc.DataMonth = &month
	}
	return doc
}

// StateFromDocument rebuilds in-memory state from its wire form. Embedded
// histories are folded into the normalized ledger, array positions become
// sort indexes, and an absent frequency defaults to monthly.
func StateFromDocument(doc *StateDocument) *State {
	state := NewState()
	if doc.SchemaVersion != 0 {
		state.SchemaVersion = doc.SchemaVersion
	}
	state.Costs, state.Ledger = CostsFromStored(doc.Costs)
	for m, v := range doc.Incomes {
		state.Incomes[m] = v
	}
	for m, v := range doc.Savings {
		state.Savings[m] = v
	}
	if doc.DataMonth != nil {
		state.DataMonth = *doc.DataMonth
	}
	return state
}

// CostsFromStored converts wire costs into catalog entries plus the ledger
// folded out of their embedded histories
func CostsFromStored(stored []StoredCost) ([]CostDefinition, Ledger) {
	costs := make([]CostDefinition, 0, len(stored))
	ledger := NewLedger()
	for i := range stored {
		sc := &stored[i]
		frequency := sc.Frequency
		if frequency == "" {
			frequency = FrequencyMonthly
		}
		id := sc.ID.UUID()
		costs = append(costs, CostDefinition{
			ID:          id,
			Name:        sc.Name,
			Amount:      sc.Amount,
			Category:    sc.Category,
			Frequency:   frequency,
			DueDay:      sc.DueDay,
			DueMonth:    sc.DueMonth,
			StartMonth:  sc.StartMonth,
			IsLimited:   sc.IsLimited,
			TotalMonths: sc.TotalMonths,
			Image:       sc.Image,
			SortIndex:   i,
		})
		for month, rec := range sc.History {
			ledger.Set(id, month, rec)
		}
	}
	return costs, ledger
}
