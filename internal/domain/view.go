package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActiveCost is one catalog entry that is due in the viewed month, together
// with its payment state and installment facts
type ActiveCost struct {
	Cost        CostDefinition
	Paid        bool
	PaidAt      *time.Time
	Installment *InstallmentInfo
}

// CategoryTotal is the summed amount of the active costs in one category
type CategoryTotal struct {
	Category Category
	Amount   decimal.Decimal
}

// ViewState is the fully derived summary for one viewed month. It is
// recomputed from scratch on every relevant input change.
type ViewState struct {
	Month          MonthID
	Income         decimal.Decimal
	Savings        decimal.Decimal
	ActiveCosts    []ActiveCost
	TotalCost      decimal.Decimal
	PaidAmount     decimal.Decimal
	PendingAmount  decimal.Decimal
	NetRemaining   decimal.Decimal
	CategoryTotals []CategoryTotal
}

// CalendarEntry is one cost placed on a calendar day
type CalendarEntry struct {
	CostID uuid.UUID
	Name   string
	Amount decimal.Decimal
	Paid   bool
}

// CalendarDay groups the costs due on one day of the viewed month
type CalendarDay struct {
	Day     int
	Entries []CalendarEntry
	AllPaid bool
}

// CalendarView is the month grid: days-in-month and the weekday offset of the
// first day let the client draw the grid; Days lists only days with costs.
type CalendarView struct {
	Month         MonthID
	DaysInMonth   int
	LeadingBlanks int // weekday of day 1, Sunday-first
	Days          []CalendarDay
}
