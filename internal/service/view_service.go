package service

import (
	"sort"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/util"
	"github.com/shopspring/decimal"
)

// ViewService derives the per-month summary from the catalog, the ledger and
// the income/savings figures. The view is recomputed from scratch on every
// call; catalogs are tens of items, so a full recompute is cheap.
type ViewService struct {
	states *StateService
}

// NewViewService creates a new ViewService
func NewViewService(states *StateService) *ViewService {
	return &ViewService{states: states}
}

// DeriveView computes the full summary for one month. With manualOrder the
// active costs keep catalog order (the order shown while reordering);
// otherwise they are stable-sorted by due day so items sharing a day keep
// their catalog order.
func (s *ViewService) DeriveView(view domain.MonthID, manualOrder bool) *domain.ViewState {
	result := &domain.ViewState{
		Month:         view,
		TotalCost:     decimal.Zero,
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
	}

	s.states.Read(func(state *domain.State) {
		byCategory := make(map[domain.Category]decimal.Decimal)
		for i := range state.Costs {
			cost := state.Costs[i]
			if !cost.ActiveIn(view) {
				continue
			}

			entry := domain.ActiveCost{Cost: cost}
			if rec, ok := state.Ledger.Record(cost.ID, view); ok {
				entry.Paid = rec.Paid
				paidAt := rec.PaidAt
				entry.PaidAt = &paidAt
			}
			if info, ok := cost.Installment(view); ok {
				entry.Installment = &info
			}
			result.ActiveCosts = append(result.ActiveCosts, entry)

			result.TotalCost = result.TotalCost.Add(cost.Amount)
			if entry.Paid {
				result.PaidAmount = result.PaidAmount.Add(cost.Amount)
			}
			byCategory[cost.Category] = byCategory[cost.Category].Add(cost.Amount)
		}

		if !manualOrder {
			sort.SliceStable(result.ActiveCosts, func(i, j int) bool {
				return result.ActiveCosts[i].Cost.DueDay < result.ActiveCosts[j].Cost.DueDay
			})
		}

		result.Income = state.IncomeFor(view)
		result.Savings = state.SavingsFor(view)
		result.PendingAmount = result.TotalCost.Sub(result.PaidAmount)
		// Savings is a committed deduction, not income. The net may go
		// negative; that is a displayed state, not an error.
		result.NetRemaining = result.Income.Sub(result.Savings).Sub(result.TotalCost)

		for _, category := range domain.Categories {
			total, ok := byCategory[category]
			if !ok || total.IsZero() {
				continue
			}
			result.CategoryTotals = append(result.CategoryTotals, domain.CategoryTotal{
				Category: category,
				Amount:   total,
			})
			delete(byCategory, category)
		}

		// Imported data may carry categories outside the known set. They still
		// count toward the total, so list them after the known ones.
		extras := make([]domain.Category, 0, len(byCategory))
		for category := range byCategory {
			extras = append(extras, category)
		}
		sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
		for _, category := range extras {
			if byCategory[category].IsZero() {
				continue
			}
			result.CategoryTotals = append(result.CategoryTotals, domain.CategoryTotal{
				Category: category,
				Amount:   byCategory[category],
			})
		}
	})

	return result
}

// Calendar places the month's active costs on a day grid. Due days past the
// end of the month are clamped to its last day.
func (s *ViewService) Calendar(view domain.MonthID) *domain.CalendarView {
	result := &domain.CalendarView{
		Month:         view,
		DaysInMonth:   util.DaysInMonth(view.Year, view.Month),
		LeadingBlanks: util.FirstWeekday(view.Year, view.Month),
	}

	derived := s.DeriveView(view, false)

	byDay := make(map[int][]domain.CalendarEntry)
	for _, entry := range derived.ActiveCosts {
		day := util.ClampDay(view.Year, view.Month, entry.Cost.DueDay)
		byDay[day] = append(byDay[day], domain.CalendarEntry{
			CostID: entry.Cost.ID,
			Name:   entry.Cost.Name,
			Amount: entry.Cost.Amount,
			Paid:   entry.Paid,
		})
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	for _, day := range days {
		entries := byDay[day]
		allPaid := true
		for _, e := range entries {
			if !e.Paid {
				allPaid = false
				break
			}
		}
		result.Days = append(result.Days, domain.CalendarDay{
			Day:     day,
			Entries: entries,
			AllPaid: allPaid,
		})
	}

	return result
}
