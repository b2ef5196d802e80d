package testutil

import (
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockStateRepository is a mock implementation of domain.StateRepository
type MockStateRepository struct {
	State     *domain.State
	LoadErr   error
	SaveErr   error
	SaveCount int
}

// NewMockStateRepository creates a new MockStateRepository with no stored state
func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{LoadErr: domain.ErrNotFound}
}

// Load returns the stored state or the configured error
func (m *MockStateRepository) Load() (*domain.State, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.State.Clone(), nil
}

// Save stores a copy of the state or returns the configured error
func (m *MockStateRepository) Save(state *domain.State) error {
	m.SaveCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = state.Clone()
	m.LoadErr = nil
	return nil
}

// MakeCost builds a valid monthly cost definition for tests
func MakeCost(name string, amount int64, category domain.Category, startMonth domain.MonthID) domain.CostDefinition {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return domain.CostDefinition{
		ID:         uuid.New(),
		Name:       name,
		Amount:     decimal.NewFromInt(amount),
		Category:   category,
		Frequency:  domain.FrequencyMonthly,
		DueDay:     1,
		StartMonth: startMonth,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// MakeLimitedCost builds a limited cost paying off over totalMonths
func MakeLimitedCost(name string, amount int64, startMonth domain.MonthID, totalMonths int) domain.CostDefinition {
	cost := MakeCost(name, amount, domain.CategoryNecessary, startMonth)
	cost.IsLimited = true
	cost.TotalMonths = totalMonths
	return cost
}

// MakeYearlyCost builds a yearly cost due in dueMonth
func MakeYearlyCost(name string, amount int64, startMonth domain.MonthID, dueMonth int) domain.CostDefinition {
	cost := MakeCost(name, amount, domain.CategoryYearly, startMonth)
	cost.Frequency = domain.FrequencyYearly
	cost.DueMonth = dueMonth
	return cost
}

// SeedState builds a state holding the given costs with sort indexes assigned
// in argument order
func SeedState(costs ...domain.CostDefinition) *domain.State {
	state := domain.NewState()
	for i := range costs {
		costs[i].SortIndex = i
	}
	state.Costs = costs
	state.DataMonth = domain.MonthID{Year: 2024, Month: 1}
	return state
}
