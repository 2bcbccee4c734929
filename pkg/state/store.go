package state

import (
	"sync"

	"github.com/rs/zerolog"
)

// Listener observes every committed transition
type Listener func(action Action, next State)

// Store owns the current snapshot. Dispatches are applied one at a time in
// call order; listeners run after each commit, outside the lock.
type Store struct {
	mutex     sync.RWMutex
	dispatch  sync.Mutex
	current   State
	listeners map[int]Listener
	nextID    int
	logger    zerolog.Logger
}

// NewStore creates a store seeded with initial
func NewStore(initial State, logger zerolog.Logger) *Store {
	return &Store{
		current:   initial,
		listeners: make(map[int]Listener),
		logger:    logger.With().Str("component", "state").Logger(),
	}
}

// State returns the current snapshot. It shares memory with the store and
// must be treated as read-only; use Clone for a private copy.
func (s *Store) State() State {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.current
}

// Dispatch applies action and returns the new snapshot
func (s *Store) Dispatch(action Action) State {
	if action == nil {
		return s.State()
	}

	s.dispatch.Lock()
	defer s.dispatch.Unlock()
	return s.commit(action)
}

// Update builds an action from the current snapshot and applies it in the
// same transition, so no other dispatch can land in between. When decide
// reports false nothing is applied and the current snapshot is returned.
// decide must not call Dispatch or Update.
func (s *Store) Update(decide func(current State) (Action, bool)) (State, bool) {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	action, ok := decide(s.State())
	if !ok || action == nil {
		return s.State(), false
	}
	return s.commit(action), true
}

// commit runs with s.dispatch held
func (s *Store) commit(action Action) State {
	s.mutex.Lock()
	next := Reduce(s.current, action)
	s.current = next
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextID; id++ {
		if l, ok := s.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	s.mutex.Unlock()

	s.logger.Debug().Str("action", string(action.Kind())).Msg("dispatched")
	for _, l := range listeners {
		l(action, next)
	}
	return next
}

// Subscribe registers l and returns a function that removes it. Listeners
// must not call Dispatch.
func (s *Store) Subscribe(l Listener) func() {
	s.mutex.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mutex.Unlock()

	return func() {
		s.mutex.Lock()
		delete(s.listeners, id)
		s.mutex.Unlock()
	}
}
