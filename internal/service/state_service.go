package service

import (
	"errors"
	"sync"
	"time"

	"github.com/Galalike/fixed-cost-pro/internal/domain"
	"github.com/Galalike/fixed-cost-pro/internal/websocket"
	"github.com/rs/zerolog/log"
)

// StateService owns the in-memory application state and the write-through to
// the persistence gateway. Every mutation runs under its lock, is saved as a
// whole document immediately, and is announced to WebSocket clients. A failed
// save degrades the session to in-memory operation instead of failing the
// user action.
type StateService struct {
	mu             sync.RWMutex
	state          *domain.State
	repo           domain.StateRepository
	eventPublisher websocket.EventPublisher
	now            func() time.Time
}

// NewStateService creates a StateService backed by the given repository
func NewStateService(repo domain.StateRepository) *StateService {
	return &StateService{
		state:          domain.NewState(),
		repo:           repo,
		eventPublisher: &websocket.NoOpPublisher{},
		now:            time.Now,
	}
}

// SetEventPublisher sets the publisher used to announce state changes
func (s *StateService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// Bootstrap loads the persisted state. A missing document seeds the default
// dataset; an undecodable one falls back to the defaults as well, so startup
// always reaches a usable state. A storage failure degrades to memory-only
// operation. Bootstrap never returns a fatal condition.
func (s *StateService) Bootstrap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.Load()
	switch {
	case err == nil:
		s.state = loaded
		log.Info().Int("costs", len(loaded.Costs)).Msg("Loaded persisted state")
		return
	case errors.Is(err, domain.ErrNotFound):
		log.Info().Msg("No persisted state, seeding defaults")
	case errors.Is(err, domain.ErrInvalidFormat):
		log.Error().Err(err).Msg("Persisted state unreadable, falling back to defaults")
	default:
		log.Warn().Err(err).Msg("Storage unavailable, running in memory only")
		s.state = domain.DefaultState(s.now())
		return
	}

	s.state = domain.DefaultState(s.now())
	if err := s.repo.Save(s.state); err != nil {
		log.Warn().Err(err).Msg("Could not persist seeded state")
	}
}

// Read runs fn with read access to the state. fn must not retain the state
// pointer past the call.
func (s *StateService) Read(fn func(state *domain.State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Mutate applies fn to the state and writes the result through to the
// repository. The mutation succeeds even when the save fails; the failure is
// only logged, so one bad write never loses the in-memory session.
func (s *StateService) Mutate(action string, fn func(state *domain.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.state); err != nil {
		return err
	}
	if err := s.repo.Save(s.state); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("State change not persisted")
	}
	return nil
}

// Replace swaps the entire state, used by import and reset
func (s *StateService) Replace(action string, next *domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = next
	if err := s.repo.Save(s.state); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("State change not persisted")
	}
}

func (s *StateService) publish(event websocket.Event) {
	s.eventPublisher.Publish(event)
}
