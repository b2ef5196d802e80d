package service

import (
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/websocket"
	"github.com/google/uuid"
)

// LedgerService handles per-month paid/unpaid marks
type LedgerService struct {
	states *StateService
	now    func() time.Time
}

// NewLedgerService creates a new LedgerService
func NewLedgerService(states *StateService) *LedgerService {
	return &LedgerService{
		states: states,
		now:    time.Now,
	}
}

// TogglePaid flips the paid flag for the given cost and month and stamps the
// record with the current time. The toggle is never gated on whether the
// recurrence evaluator considers the cost active in that month; the ledger
// and the evaluator are decoupled so off-schedule payments can be recorded.
func (s *LedgerService) TogglePaid(costID uuid.UUID, month domain.MonthID) (domain.PaymentRecord, error) {
	var record domain.PaymentRecord
	err := s.states.Mutate("ledger.toggle", func(state *domain.State) error {
		if _, _, ok := state.CostByID(costID); !ok {
			return domain.ErrCostNotFound
		}
		record = state.Ledger.Toggle(costID, month, s.now())
		return nil
	})
	if err != nil {
		return domain.PaymentRecord{}, err
	}

	s.states.publish(websocket.CostPaidToggled(map[string]interface{}{
		"id":    costID.String(),
		"month": month.String(),
		"paid":  record.Paid,
	}))
	return record, nil
}
