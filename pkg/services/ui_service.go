package services

import "mindwell/pkg/state"

// UIService exposes the raw snapshot and the global loading flag
type UIService struct {
	store *state.Store
}

// NewUIService creates a new UI service
func NewUIService(store *state.Store) *UIService {
	return &UIService{store: store}
}

// Snapshot returns a private copy of the current state
func (s *UIService) Snapshot() state.State {
	return s.store.State().Clone()
}

// SetLoading toggles the global loading indicator
func (s *UIService) SetLoading(loading bool) state.State {
	return s.store.Dispatch(state.SetLoading{Loading: loading})
}
