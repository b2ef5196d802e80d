package handler

import (
	"errors"
	"net/http"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// MonthHandler handles view-month and monthly figure HTTP requests
type MonthHandler struct {
	monthService *service.MonthService
}

// NewMonthHandler creates a new MonthHandler
func NewMonthHandler(monthService *service.MonthService) *MonthHandler {
	return &MonthHandler{monthService: monthService}
}

// SetMonthRequest sets the current view month, either to an absolute month or
// by a relative offset. Exactly one of the two fields must be present.
type SetMonthRequest struct {
	Month  string `json:"month,omitempty"`
	Offset *int   `json:"offset,omitempty"`
}

// MonthResponse represents the current view month
type MonthResponse struct {
	Month string `json:"month"`
}

// AmountRequest carries a single decimal amount
type AmountRequest struct {
	Amount string `json:"amount"`
}

// FigureResponse represents a stored monthly figure
type FigureResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// GetCurrentMonth handles GET /api/v1/months/current
func (h *MonthHandler) GetCurrentMonth(c echo.Context) error {
	return c.JSON(http.StatusOK, MonthResponse{Month: h.monthService.CurrentMonth().String()})
}

// SetCurrentMonth handles PUT /api/v1/months/current
func (h *MonthHandler) SetCurrentMonth(c echo.Context) error {
	var req SetMonthRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	switch {
	case req.Month != "":
		month, err := domain.ParseMonthID(req.Month)
		if err != nil {
			return NewValidationError(c, "Invalid month", []ValidationError{
				{Field: "month", Message: "Must be in YYYY-MM form"},
			})
		}
		if err := h.monthService.SetCurrentMonth(month); err != nil {
			log.Error().Err(err).Msg("Failed to set current month")
			return NewInternalError(c, "An unexpected error occurred")
		}
		return c.JSON(http.StatusOK, MonthResponse{Month: month.String()})

	case req.Offset != nil:
		month, err := h.monthService.ShiftCurrentMonth(*req.Offset)
		if err != nil {
			log.Error().Err(err).Msg("Failed to shift current month")
			return NewInternalError(c, "An unexpected error occurred")
		}
		return c.JSON(http.StatusOK, MonthResponse{Month: month.String()})

	default:
		return NewValidationError(c, "Either month or offset is required", nil)
	}
}

// SetIncome handles PUT /api/v1/months/:month/income
func (h *MonthHandler) SetIncome(c echo.Context) error {
	return h.setFigure(c, h.monthService.SetIncome)
}

// SetSavings handles PUT /api/v1/months/:month/savings
func (h *MonthHandler) SetSavings(c echo.Context) error {
	return h.setFigure(c, h.monthService.SetSavings)
}

func (h *MonthHandler) setFigure(c echo.Context, set func(domain.MonthID, decimal.Decimal) error) error {
	month, err := domain.ParseMonthID(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be in YYYY-MM form"},
		})
	}

	var req AmountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	if err := set(month, amount); err != nil {
		if errors.Is(err, domain.ErrAmountNegative) {
			return NewValidationError(c, "Amount must not be negative", []ValidationError{
				{Field: "amount", Message: "Must be zero or positive"},
			})
		}
		log.Error().Err(err).Str("month", month.String()).Msg("Failed to store monthly figure")
		return NewInternalError(c, "An unexpected error occurred")
	}

	return c.JSON(http.StatusOK, FigureResponse{Month: month.String(), Amount: amount.String()})
}
