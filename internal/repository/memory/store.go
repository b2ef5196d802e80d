// Package memory is an in-memory domain.StateRepository, used when the
// configured store cannot be opened (the session then simply does not
// survive a restart) and in tests.
package memory

import (
	"sync"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
)

// Store keeps the state in memory only
type Store struct {
	mu    sync.Mutex
	state *domain.State
}

// New creates an empty Store
func New() *Store {
	return &Store{}
}

// Load returns a copy of the stored state, or ErrNotFound before the first save
func (s *Store) Load() (*domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, domain.ErrNotFound
	}
	return s.state.Clone(), nil
}

// Save stores a copy of the state
func (s *Store) Save(state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state.Clone()
	return nil
}
