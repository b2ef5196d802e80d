package service

import (
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/websocket"
	"github.com/shopspring/decimal"
)

// MonthService handles the viewing month and the per-month income and
// savings figures
type MonthService struct {
	states *StateService
	// persistViewMonth selects between the two observed behaviors: reopening
	// on the last-viewed month, or always opening on the real current month.
	persistViewMonth bool
	now              func() time.Time
}

// NewMonthService creates a new MonthService
func NewMonthService(states *StateService, persistViewMonth bool) *MonthService {
	return &MonthService{
		states:           states,
		persistViewMonth: persistViewMonth,
		now:              time.Now,
	}
}

// CurrentMonth returns the month the app should be viewing: the stored
// last-viewed month when that policy is enabled and one exists, otherwise
// the real current month
func (s *MonthService) CurrentMonth() domain.MonthID {
	if s.persistViewMonth {
		var stored domain.MonthID
		s.states.Read(func(state *domain.State) {
			stored = state.DataMonth
		})
		if !stored.IsZero() {
			return stored
		}
	}
	return domain.MonthIDFromTime(s.now())
}

// SetCurrentMonth stores the viewing month. The value is always persisted;
// the policy only decides whether it is honored on the next load.
func (s *MonthService) SetCurrentMonth(month domain.MonthID) error {
	err := s.states.Mutate("month.set", func(state *domain.State) error {
		state.DataMonth = month
		return nil
	})
	if err != nil {
		return err
	}

	s.states.publish(websocket.MonthChanged(map[string]string{"month": month.String()}))
	return nil
}

// ShiftCurrentMonth moves the viewing month by the given signed offset and
// returns the resulting month. The shift is always relative to the stored
// viewing month so consecutive shifts accumulate; the persistence policy only
// governs what CurrentMonth answers on the next load.
func (s *MonthService) ShiftCurrentMonth(offset int) (domain.MonthID, error) {
	var stored domain.MonthID
	s.states.Read(func(state *domain.State) {
		stored = state.DataMonth
	})
	if stored.IsZero() {
		stored = domain.MonthIDFromTime(s.now())
	}

	next := stored.AddMonths(offset)
	if err := s.SetCurrentMonth(next); err != nil {
		return domain.MonthID{}, err
	}
	return next, nil
}

// SetIncome records the income for a month. A zero amount removes the entry;
// absent entries mean zero.
func (s *MonthService) SetIncome(month domain.MonthID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrAmountNegative
	}

	err := s.states.Mutate("income.set", func(state *domain.State) error {
		if amount.IsZero() {
			delete(state.Incomes, month)
		} else {
			state.Incomes[month] = amount
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.states.publish(websocket.FiguresUpdated(map[string]string{
		"month":  month.String(),
		"income": amount.String(),
	}))
	return nil
}

// SetSavings records the savings commitment for a month. A zero amount
// removes the entry; absent entries mean zero.
func (s *MonthService) SetSavings(month domain.MonthID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domain.ErrAmountNegative
	}

	err := s.states.Mutate("savings.set", func(state *domain.State) error {
		if amount.IsZero() {
			delete(state.Savings, month)
		} else {
			state.Savings[month] = amount
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.states.publish(websocket.FiguresUpdated(map[string]string{
		"month":   month.String(),
		"savings": amount.String(),
	}))
	return nil
}
