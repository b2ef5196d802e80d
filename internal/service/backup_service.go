package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/websocket"
	"github.com/shopspring/decimal"
)

// BackupService handles JSON export, import, and resetting to the seed
// dataset. What carries the bytes (file download, share sheet, clipboard) is
// the caller's concern.
type BackupService struct {
	states *StateService
	now    func() time.Time
}

// NewBackupService creates a new BackupService
func NewBackupService(states *StateService) *BackupService {
	return &BackupService{
		states: states,
		now:    time.Now,
	}
}

// BackupDocument is the export payload: the catalog with embedded histories
// plus the income and savings figures. The viewing month is deliberately not
// part of a backup.
type BackupDocument struct {
	Costs   []domain.StoredCost                `json:"costs"`
	Incomes map[domain.MonthID]decimal.Decimal `json:"incomes"`
	Savings map[domain.MonthID]decimal.Decimal `json:"savings"`
}

// importDocument distinguishes absent keys from empty ones: each top-level
// key, when present, fully replaces the matching collection
type importDocument struct {
	Costs   *[]domain.StoredCost                `json:"costs"`
	Incomes *map[domain.MonthID]decimal.Decimal `json:"incomes"`
	Savings *map[domain.MonthID]decimal.Decimal `json:"savings"`
}

// Export serializes the current state for backup
func (s *BackupService) Export() ([]byte, error) {
	var doc BackupDocument
	s.states.Read(func(state *domain.State) {
		full := state.Document()
		doc.Costs = full.Costs
		doc.Incomes = full.Incomes
		doc.Savings = full.Savings
	})
	return json.MarshalIndent(doc, "", "  ")
}

// Import parses a backup payload and replaces each collection whose key is
// present. The payload is parsed and resolved completely before any state is
// touched, so a malformed document leaves existing data exactly as it was.
func (s *BackupService) Import(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: backup root must be a JSON object", domain.ErrInvalidFormat)
	}

	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}

	var costs []domain.CostDefinition
	var ledger domain.Ledger
	if doc.Costs != nil {
		costs, ledger = domain.CostsFromStored(*doc.Costs)
	}

	err := s.states.Mutate("state.import", func(state *domain.State) error {
		if doc.Costs != nil {
			state.Costs = costs
			state.Ledger = ledger
		}
		if doc.Incomes != nil {
			state.Incomes = make(map[domain.MonthID]decimal.Decimal, len(*doc.Incomes))
			for m, v := range *doc.Incomes {
				state.Incomes[m] = v
			}
		}
		if doc.Savings != nil {
			state.Savings = make(map[domain.MonthID]decimal.Decimal, len(*doc.Savings))
			for m, v := range *doc.Savings {
				state.Savings[m] = v
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.states.publish(websocket.StateImported(map[string]int{"costs": len(costs)}))
	return nil
}

// Reset discards everything and reseeds the default dataset, with the
// viewing month back on the real current month
func (s *BackupService) Reset() {
	s.states.Replace("state.reset", domain.DefaultState(s.now()))
	s.states.publish(websocket.StateReset(nil))
}
