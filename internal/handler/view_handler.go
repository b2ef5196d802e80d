package handler

import (
	"net/http"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/service"
	"github.com/labstack/echo/v4"
)

// ViewHandler handles derived month view HTTP requests
type ViewHandler struct {
	viewService *service.ViewService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(viewService *service.ViewService) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}

// InstallmentResponse describes installment progress for a limited cost
type InstallmentResponse struct {
	Current       int    `json:"current"`
	Total         int    `json:"total"`
	RemainingDebt string `json:"remainingDebt"`
}

// ActiveCostResponse is one cost due in the viewed month
type ActiveCostResponse struct {
	CostResponse
	Paid        bool                 `json:"paid"`
	PaidAt      *string              `json:"paidAt,omitempty"`
	Installment *InstallmentResponse `json:"installment,omitempty"`
}

// CategoryTotalResponse is the summed amount of one category
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// ViewResponse is the derived summary for one viewed month
type ViewResponse struct {
	Month          string                  `json:"month"`
	Income         string                  `json:"income"`
	Savings        string                  `json:"savings"`
	ActiveCosts    []ActiveCostResponse    `json:"activeCosts"`
	TotalCost      string                  `json:"totalCost"`
	PaidAmount     string                  `json:"paidAmount"`
	PendingAmount  string                  `json:"pendingAmount"`
	NetRemaining   string                  `json:"netRemaining"`
	CategoryTotals []CategoryTotalResponse `json:"categoryTotals"`
}

// CalendarEntryResponse is one cost placed on a calendar day
type CalendarEntryResponse struct {
	CostID string `json:"costId"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Paid   bool   `json:"paid"`
}

// CalendarDayResponse groups the costs due on one day
type CalendarDayResponse struct {
	Day     int                     `json:"day"`
	Entries []CalendarEntryResponse `json:"entries"`
	AllPaid bool                    `json:"allPaid"`
}

// CalendarResponse is the month grid for the viewed month
type CalendarResponse struct {
	Month         string                `json:"month"`
	DaysInMonth   int                   `json:"daysInMonth"`
	LeadingBlanks int                   `json:"leadingBlanks"`
	Days          []CalendarDayResponse `json:"days"`
}

func activeCostToResponse(ac *domain.ActiveCost) ActiveCostResponse {
	resp := ActiveCostResponse{
		CostResponse: costToResponse(&ac.Cost),
		Paid:         ac.Paid,
	}
	if ac.PaidAt != nil {
		paidAt := ac.PaidAt.Format("2006-01-02T15:04:05Z07:00")
		resp.PaidAt = &paidAt
	}
	if ac.Installment != nil {
		resp.Installment = &InstallmentResponse{
			Current:       ac.Installment.Current,
			Total:         ac.Installment.Total,
			RemainingDebt: ac.Installment.RemainingDebt.String(),
		}
	}
	return resp
}

// GetView handles GET /api/v1/view/:month
func (h *ViewHandler) GetView(c echo.Context) error {
	month, err := domain.ParseMonthID(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be in YYYY-MM form"},
		})
	}

	manualOrder := c.QueryParam("manualOrder") == "true"
	view := h.viewService.DeriveView(month, manualOrder)

	resp := ViewResponse{
		Month:          view.Month.String(),
		Income:         view.Income.String(),
		Savings:        view.Savings.String(),
		ActiveCosts:    make([]ActiveCostResponse, 0, len(view.ActiveCosts)),
		TotalCost:      view.TotalCost.String(),
		PaidAmount:     view.PaidAmount.String(),
		PendingAmount:  view.PendingAmount.String(),
		NetRemaining:   view.NetRemaining.String(),
		CategoryTotals: make([]CategoryTotalResponse, 0, len(view.CategoryTotals)),
	}
	for i := range view.ActiveCosts {
		resp.ActiveCosts = append(resp.ActiveCosts, activeCostToResponse(&view.ActiveCosts[i]))
	}
	for _, ct := range view.CategoryTotals {
		resp.CategoryTotals = append(resp.CategoryTotals, CategoryTotalResponse{
			Category: string(ct.Category),
			Amount:   ct.Amount.String(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// GetCalendar handles GET /api/v1/view/:month/calendar
func (h *ViewHandler) GetCalendar(c echo.Context) error {
	month, err := domain.ParseMonthID(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be in YYYY-MM form"},
		})
	}

	cal := h.viewService.Calendar(month)

	resp := CalendarResponse{
		Month:         cal.Month.String(),
		DaysInMonth:   cal.DaysInMonth,
		LeadingBlanks: cal.LeadingBlanks,
		Days:          make([]CalendarDayResponse, 0, len(cal.Days)),
	}
	for _, day := range cal.Days {
		entries := make([]CalendarEntryResponse, 0, len(day.Entries))
		for _, e := range day.Entries {
			entries = append(entries, CalendarEntryResponse{
				CostID: e.CostID.String(),
				Name:   e.Name,
				Amount: e.Amount.String(),
				Paid:   e.Paid,
			})
		}
		resp.Days = append(resp.Days, CalendarDayResponse{
			Day:     day.Day,
			Entries: entries,
			AllPaid: day.AllPaid,
		})
	}

	return c.JSON(http.StatusOK, resp)
}
