package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"mindwell/pkg/schedule"
	"mindwell/pkg/state"
	"mindwell/pkg/storage"
)

const snapshotKey = "state"

// Persister mirrors the state snapshot into the KV store. Bursts of
// dispatches are coalesced into a single write after delay.
type Persister struct {
	store       *state.Store
	kv          *storage.KV
	scheduler   *schedule.Scheduler
	delay       time.Duration
	unsubscribe func()
	logger      zerolog.Logger
}

// NewPersister creates a persister. Call Start to begin mirroring.
func NewPersister(store *state.Store, kv *storage.KV, delay time.Duration, logger zerolog.Logger) *Persister {
	return &Persister{
		store:     store,
		kv:        kv,
		scheduler: schedule.New(),
		delay:     delay,
		logger:    logger.With().Str("component", "persister").Logger(),
	}
}

// Restore loads a saved snapshot into the store. The transient loading
// flag is never restored.
func (p *Persister) Restore(ctx context.Context) bool {
	var saved state.State
	if !p.kv.Get(ctx, snapshotKey, &saved) {
		return false
	}
	saved.IsLoading = false
	if saved.MoodEntries == nil {
		saved.MoodEntries = state.Initial().MoodEntries
	}
	if saved.JournalEntries == nil {
		saved.JournalEntries = state.Initial().JournalEntries
	}
	p.store.Dispatch(state.Restore{State: saved})
	p.logger.Info().
		Int("mood_entries", len(saved.MoodEntries)).
		Int("journal_entries", len(saved.JournalEntries)).
		Msg("restored saved state")
	return true
}

// Start subscribes to the store
func (p *Persister) Start() {
	p.unsubscribe = p.store.Subscribe(func(action state.Action, next state.State) {
		if action.Kind() == state.KindLogout {
			p.scheduler.Cancel(snapshotKey)
			p.kv.Remove(context.Background(), snapshotKey)
			return
		}
		if p.delay <= 0 {
			p.save(next)
			return
		}
		p.scheduler.After(snapshotKey, p.delay, func() { p.save(p.store.State()) })
	})
}

// Stop unsubscribes and writes any pending snapshot
func (p *Persister) Stop() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.scheduler.Flush(snapshotKey)
	p.scheduler.Close()
}

func (p *Persister) save(s state.State) {
	p.kv.Set(context.Background(), snapshotKey, s)
}
