package handler

import (
	"errors"
	"net/http"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// CostHandler handles cost catalog HTTP requests
type CostHandler struct {
	catalogService *service.CatalogService
	ledgerService  *service.LedgerService
}

// NewCostHandler creates a new CostHandler
func NewCostHandler(catalogService *service.CatalogService, ledgerService *service.LedgerService) *CostHandler {
	return &CostHandler{
		catalogService: catalogService,
		ledgerService:  ledgerService,
	}
}

// CostRequest represents the create/update cost request body
type CostRequest struct {
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	Category    string  `json:"category"`
	Frequency   string  `json:"frequency"`
	DueDay      int     `json:"dueDay"`
	DueMonth    int     `json:"dueMonth"`
	StartMonth  string  `json:"startMonth"`
	IsLimited   bool    `json:"isLimited"`
	TotalMonths int     `json:"totalMonths"`
	Image       *string `json:"image,omitempty"`
}

// CostResponse represents a cost definition in API responses
type CostResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	Category    string  `json:"category"`
	Frequency   string  `json:"frequency"`
	DueDay      int     `json:"dueDay"`
	DueMonth    int     `json:"dueMonth,omitempty"`
	StartMonth  string  `json:"startMonth"`
	IsLimited   bool    `json:"isLimited"`
	TotalMonths int     `json:"totalMonths,omitempty"`
	Image       *string `json:"image,omitempty"`
	SortIndex   int     `json:"sortIndex"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CostListResponse represents the list response
type CostListResponse struct {
	Data []CostResponse `json:"data"`
}

// MoveCostRequest represents the reorder request body
type MoveCostRequest struct {
	Month     string `json:"month"`
	Index     int    `json:"index"`
	Direction int    `json:"direction"`
}

// TogglePaidRequest represents the toggle-paid request body
type TogglePaidRequest struct {
	Month string `json:"month"`
}

// TogglePaidResponse represents the toggle-paid response
type TogglePaidResponse struct {
	ID     string `json:"id"`
	Month  string `json:"month"`
	Paid   bool   `json:"paid"`
	PaidAt string `json:"paidAt"`
}

func costToResponse(cost *domain.CostDefinition) CostResponse {
	return CostResponse{
		ID:          cost.ID.String(),
		Name:        cost.Name,
		Amount:      cost.Amount.String(),
		Category:    string(cost.Category),
		Frequency:   string(cost.Frequency),
		DueDay:      cost.DueDay,
		DueMonth:    cost.DueMonth,
		StartMonth:  cost.StartMonth.String(),
		IsLimited:   cost.IsLimited,
		TotalMonths: cost.TotalMonths,
		Image:       cost.Image,
		SortIndex:   cost.SortIndex,
		CreatedAt:   cost.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   cost.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *CostHandler) parseInput(c echo.Context, req *CostRequest) (service.CostInput, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return service.CostInput{}, NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	startMonth, err := domain.ParseMonthID(req.StartMonth)
	if err != nil {
		return service.CostInput{}, NewValidationError(c, "Invalid start month", []ValidationError{
			{Field: "startMonth", Message: "Must be in YYYY-MM form"},
		})
	}

	return service.CostInput{
		Name:        req.Name,
		Amount:      amount,
		Category:    domain.Category(req.Category),
		Frequency:   domain.Frequency(req.Frequency),
		DueDay:      req.DueDay,
		DueMonth:    req.DueMonth,
		StartMonth:  startMonth,
		IsLimited:   req.IsLimited,
		TotalMonths: req.TotalMonths,
		Image:       req.Image,
	}, nil
}

// CreateCost handles POST /api/v1/costs
func (h *CostHandler) CreateCost(c echo.Context) error {
	var req CostRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, err := h.parseInput(c, &req)
	if err != nil {
		return err
	}

	cost, err := h.catalogService.CreateCost(input)
	if err != nil {
		return h.handleServiceError(c, err, "create cost")
	}

	return c.JSON(http.StatusCreated, costToResponse(cost))
}

// GetCosts handles GET /api/v1/costs
func (h *CostHandler) GetCosts(c echo.Context) error {
	costs := h.catalogService.ListCosts()

	resp := CostListResponse{Data: make([]CostResponse, 0, len(costs))}
	for i := range costs {
		resp.Data = append(resp.Data, costToResponse(&costs[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateCost handles PUT /api/v1/costs/:id
func (h *CostHandler) UpdateCost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid cost id", nil)
	}

	var req CostRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, err := h.parseInput(c, &req)
	if err != nil {
		return err
	}

	cost, err := h.catalogService.UpdateCost(id, input)
	if err != nil {
		return h.handleServiceError(c, err, "update cost")
	}

	return c.JSON(http.StatusOK, costToResponse(cost))
}

// DeleteCost handles DELETE /api/v1/costs/:id
func (h *CostHandler) DeleteCost(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid cost id", nil)
	}

	if err := h.catalogService.DeleteCost(id); err != nil {
		return h.handleServiceError(c, err, "delete cost")
	}

	return c.NoContent(http.StatusNoContent)
}

// MoveCost handles POST /api/v1/costs/move
func (h *CostHandler) MoveCost(c echo.Context) error {
	var req MoveCostRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	month, err := domain.ParseMonthID(req.Month)
	if err != nil {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be in YYYY-MM form"},
		})
	}

	if err := h.catalogService.MoveCost(month, req.Index, req.Direction); err != nil {
		return h.handleServiceError(c, err, "move cost")
	}

	return c.NoContent(http.StatusNoContent)
}

// TogglePaid handles PATCH /api/v1/costs/:id/toggle-paid
func (h *CostHandler) TogglePaid(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid cost id", nil)
	}

	var req TogglePaidRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	month, err := domain.ParseMonthID(req.Month)
	if err != nil {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be in YYYY-MM form"},
		})
	}

	record, err := h.ledgerService.TogglePaid(id, month)
	if err != nil {
		return h.handleServiceError(c, err, "toggle paid")
	}

	return c.JSON(http.StatusOK, TogglePaidResponse{
		ID:     id.String(),
		Month:  month.String(),
		Paid:   record.Paid,
		PaidAt: record.PaidAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// handleServiceError maps service errors to HTTP responses
func (h *CostHandler) handleServiceError(c echo.Context, err error, operation string) error {
	var field string
	switch {
	case errors.Is(err, domain.ErrCostNotFound):
		return NewNotFoundError(c, "Cost not found")
	case errors.Is(err, domain.ErrCostNameEmpty), errors.Is(err, domain.ErrCostNameTooLong):
		field = "name"
	case errors.Is(err, domain.ErrCostAmountNegative):
		field = "amount"
	case errors.Is(err, domain.ErrInvalidCategory):
		field = "category"
	case errors.Is(err, domain.ErrInvalidFrequency):
		field = "frequency"
	case errors.Is(err, domain.ErrInvalidDueDay):
		field = "dueDay"
	case errors.Is(err, domain.ErrInvalidDueMonth):
		field = "dueMonth"
	case errors.Is(err, domain.ErrInvalidTotalMonths):
		field = "totalMonths"
	case errors.Is(err, domain.ErrStartMonthRequired):
		field = "startMonth"
	case errors.Is(err, domain.ErrInvalidDirection):
		field = "direction"
	default:
		log.Error().Err(err).Str("operation", operation).Msg("Unexpected service error")
		return NewInternalError(c, "An unexpected error occurred")
	}

	return NewValidationError(c, err.Error(), []ValidationError{
		{Field: field, Message: err.Error()},
	})
}
