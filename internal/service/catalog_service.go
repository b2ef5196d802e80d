package service

import (
	"strings"
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/websocket"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogService handles cost catalog business logic: create, edit, delete
// and manual reordering of cost definitions
type CatalogService struct {
	states *StateService
	now    func() time.Time
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(states *StateService) *CatalogService {
	return &CatalogService{
		states: states,
		now:    time.Now,
	}
}

// CostInput holds the fields accepted from the cost edit form
type CostInput struct {
	Name        string
	Amount      decimal.Decimal
	Category    domain.Category
	Frequency   domain.Frequency
	DueDay      int
	DueMonth    int
	StartMonth  domain.MonthID
	IsLimited   bool
	TotalMonths int
	Image       *string
}

func (in CostInput) normalized() CostInput {
	in.Name = strings.TrimSpace(in.Name)
	if in.Frequency == "" {
		in.Frequency = domain.FrequencyMonthly
	}
	if in.DueDay == 0 {
		in.DueDay = 1
	}
	if !in.IsLimited {
		in.TotalMonths = 0
	}
	if in.Frequency != domain.FrequencyYearly {
		in.DueMonth = 0
	}
	return in
}

// CreateCost validates the input and appends a new cost to the catalog with a
// fresh id, the next sort index, and an empty payment history
func (s *CatalogService) CreateCost(input CostInput) (*domain.CostDefinition, error) {
	input = input.normalized()
	now := s.now()

	cost := domain.CostDefinition{
		ID:          uuid.New(),
		Name:        input.Name,
		Amount:      input.Amount,
		Category:    input.Category,
		Frequency:   input.Frequency,
		DueDay:      input.DueDay,
		DueMonth:    input.DueMonth,
		StartMonth:  input.StartMonth,
		IsLimited:   input.IsLimited,
		TotalMonths: input.TotalMonths,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := cost.Validate(); err != nil {
		return nil, err
	}

	err := s.states.Mutate("cost.create", func(state *domain.State) error {
		cost.SortIndex = state.NextSortIndex()
		state.Costs = append(state.Costs, cost)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.states.publish(websocket.CostCreated(cost))
	return &cost, nil
}

// UpdateCost replaces every field of an existing cost except its id and its
// payment history
func (s *CatalogService) UpdateCost(id uuid.UUID, input CostInput) (*domain.CostDefinition, error) {
	input = input.normalized()

	var updated domain.CostDefinition
	err := s.states.Mutate("cost.update", func(state *domain.State) error {
		existing, _, ok := state.CostByID(id)
		if !ok {
			return domain.ErrCostNotFound
		}

		next := *existing
		next.Name = input.Name
		next.Amount = input.Amount
		next.Category = input.Category
		next.Frequency = input.Frequency
		next.DueDay = input.DueDay
		next.DueMonth = input.DueMonth
		next.StartMonth = input.StartMonth
		next.IsLimited = input.IsLimited
		next.TotalMonths = input.TotalMonths
		next.Image = input.Image
		next.UpdatedAt = s.now()
		if err := next.Validate(); err != nil {
			return err
		}

		*existing = next
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.states.publish(websocket.CostUpdated(updated))
	return &updated, nil
}

// DeleteCost removes a cost from the catalog. Its ledger entries are dropped
// with it; history is embedded per cost, so no orphan cleanup is needed.
func (s *CatalogService) DeleteCost(id uuid.UUID) error {
	err := s.states.Mutate("cost.delete", func(state *domain.State) error {
		_, idx, ok := state.CostByID(id)
		if !ok {
			return domain.ErrCostNotFound
		}
		state.Costs = append(state.Costs[:idx], state.Costs[idx+1:]...)
		state.Ledger.RemoveCost(id)
		return nil
	})
	if err != nil {
		return err
	}

	s.states.publish(websocket.CostDeleted(map[string]string{"id": id.String()}))
	return nil
}

// ListCosts returns the full catalog in its explicit sort order
func (s *CatalogService) ListCosts() []domain.CostDefinition {
	var costs []domain.CostDefinition
	s.states.Read(func(state *domain.State) {
		costs = make([]domain.CostDefinition, len(state.Costs))
		copy(costs, state.Costs)
	})
	return costs
}

// MoveCost swaps a cost with its neighbor in the catalog. The index refers to
// the list visible in the viewed month (active costs in catalog order, the
// order shown while reordering); it is resolved back to the catalog by id
// because the visible list is a subset and adjacency in it does not imply
// adjacency in the catalog. Swaps past either end are no-ops.
func (s *CatalogService) MoveCost(view domain.MonthID, visibleIndex int, direction int) error {
	if direction != -1 && direction != 1 {
		return domain.ErrInvalidDirection
	}

	moved := false
	err := s.states.Mutate("catalog.move", func(state *domain.State) error {
		state.SortCatalog()

		visible := make([]int, 0, len(state.Costs)) // catalog positions of active costs
		for i := range state.Costs {
			if state.Costs[i].ActiveIn(view) {
				visible = append(visible, i)
			}
		}
		if visibleIndex < 0 || visibleIndex >= len(visible) {
			return domain.ErrCostNotFound
		}

		catalogIdx := visible[visibleIndex]
		neighbor := catalogIdx + direction
		if neighbor < 0 || neighbor >= len(state.Costs) {
			return nil
		}

		a, b := &state.Costs[catalogIdx], &state.Costs[neighbor]
		a.SortIndex, b.SortIndex = b.SortIndex, a.SortIndex
		state.SortCatalog()
		moved = true
		return nil
	})
	if err != nil {
		return err
	}

	if moved {
		s.states.publish(websocket.CatalogReordered(map[string]string{"month": view.String()}))
	}
	return nil
}
