package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCostNotFound       = errors.New("cost not found")
	ErrCostNameEmpty      = errors.New("cost name is required")
	ErrCostNameTooLong    = errors.New("cost name must be 200 characters or less")
	ErrCostAmountNegative = errors.New("cost amount must not be negative")
	ErrInvalidDueDay      = errors.New("due day must be between 1 and 31")
	ErrInvalidDueMonth    = errors.New("due month must be between 1 and 12")
	ErrInvalidTotalMonths = errors.New("total months must be at least 1")
	ErrStartMonthRequired = errors.New("start month is required")
	ErrInvalidDirection   = errors.New("move direction must be -1 or 1")
)

// CostDefinition is a recurring or once-per-year expense template. The amount
// is the fixed charge for every month in which the cost is active.
type CostDefinition struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Frequency   Frequency       `json:"frequency"`
	DueDay      int             `json:"dueDay"`
	DueMonth    int             `json:"dueMonth,omitempty"`
	StartMonth  MonthID         `json:"startMonth"`
	IsLimited   bool            `json:"isLimited,omitempty"`
	TotalMonths int             `json:"totalMonths,omitempty"`
	Image       *string         `json:"image,omitempty"`
	SortIndex   int             `json:"sortIndex"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (c *CostDefinition) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCostNameEmpty
	}
	if len(c.Name) > MaxCostNameLength {
		return ErrCostNameTooLong
	}
	if c.Amount.IsNegative() {
		return ErrCostAmountNegative
	}
	if !c.Category.Valid() {
		return ErrInvalidCategory
	}
	if !c.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	// DueDay is deliberately not checked against the days in any particular
	// month; calendar placement clamps it instead.
	if c.DueDay < 1 || c.DueDay > 31 {
		return ErrInvalidDueDay
	}
	if c.Frequency == FrequencyYearly && (c.DueMonth < 1 || c.DueMonth > 12) {
		return ErrInvalidDueMonth
	}
	if c.IsLimited && c.TotalMonths < 1 {
		return ErrInvalidTotalMonths
	}
	if c.StartMonth.IsZero() {
		return ErrStartMonthRequired
	}
	return nil
}

// ActiveIn reports whether the cost produces an obligation in the given month:
// never before the start month, only in the due month for yearly costs, and
// never once a limited installment series has run out.
func (c *CostDefinition) ActiveIn(view MonthID) bool {
	if view.Before(c.StartMonth) {
		return false
	}
	if c.Frequency == FrequencyYearly && view.Month != c.DueMonth {
		return false
	}
	if c.IsLimited && DiffMonths(view, c.StartMonth) >= c.TotalMonths {
		return false
	}
	return true
}

// InstallmentInfo describes one numbered occurrence of a limited cost and the
// debt outstanding as of the start of the viewed month, current installment
// included.
type InstallmentInfo struct {
	Current       int             `json:"current"`
	Total         int             `json:"total"`
	RemainingDebt decimal.Decimal `json:"remainingDebt"`
}

// Installment returns installment facts for the viewed month. The second
// return value is false for unlimited costs. Months past the end of the
// series still yield a result clamped to the final installment, so completed
// costs can be shown historically; callers gate on ActiveIn to decide whether
// the cost is due.
func (c *CostDefinition) Installment(view MonthID) (InstallmentInfo, bool) {
	if !c.IsLimited {
		return InstallmentInfo{}, false
	}
	elapsed := DiffMonths(view, c.StartMonth)
	current := elapsed + 1
	if current > c.TotalMonths {
		current = c.TotalMonths
	}
	remaining := c.TotalMonths - (current - 1)
	return InstallmentInfo{
		Current:       current,
		Total:         c.TotalMonths,
		RemainingDebt: c.Amount.Mul(decimal.NewFromInt(int64(remaining))),
	}, true
}
