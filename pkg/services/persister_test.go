package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell/pkg/models"
	"mindwell/pkg/state"
	"mindwell/pkg/storage"
)

func TestPersisterRoundTrip(t *testing.T) {
	backend := storage.NewMemoryBackend(0)
	kv := storage.NewKV(backend, "mindwell", zerolog.Nop())

	first := state.NewStore(state.Initial(), zerolog.Nop())
	p := NewPersister(first, kv, 0, zerolog.Nop())
	p.Start()
	first.Dispatch(state.SetUser{User: MockUser(time.Now())})
	first.Dispatch(state.AddMoodEntry{Entry: models.MoodEntry{ID: "m1", Mood: models.MoodHappy}})
	first.Dispatch(state.SetLoading{Loading: true})
	p.Stop()

	second := state.NewStore(state.Initial(), zerolog.Nop())
	restored := NewPersister(second, kv, 0, zerolog.Nop())
	require.True(t, restored.Restore(ctx))

	current := second.State()
	assert.True(t, current.IsAuthenticated)
	assert.Equal(t, "user-123", current.User.ID)
	require.Len(t, current.MoodEntries, 1)
	assert.Equal(t, models.MoodHappy, current.CurrentMood)
	assert.False(t, current.IsLoading)
}

func TestPersisterCoalescesWrites(t *testing.T) {
	kv := storage.NewKV(storage.NewMemoryBackend(0), "mindwell", zerolog.Nop())
	store := state.NewStore(state.Initial(), zerolog.Nop())
	p := NewPersister(store, kv, time.Hour, zerolog.Nop())
	p.Start()

	store.Dispatch(state.SetSearchQuery{Query: "a"})
	store.Dispatch(state.SetSearchQuery{Query: "ab"})

	var saved state.State
	assert.False(t, kv.Get(ctx, snapshotKey, &saved))

	p.Stop()
	require.True(t, kv.Get(ctx, snapshotKey, &saved))
	assert.Equal(t, "ab", saved.SearchQuery)
}

func TestPersisterForgetsOnLogout(t *testing.T) {
	kv := storage.NewKV(storage.NewMemoryBackend(0), "mindwell", zerolog.Nop())
	store := state.NewStore(state.Initial(), zerolog.Nop())
	p := NewPersister(store, kv, 0, zerolog.Nop())
	p.Start()
	defer p.Stop()

	store.Dispatch(state.SetUser{User: MockUser(time.Now())})
	store.Dispatch(state.Logout{})

	var saved state.State
	assert.False(t, kv.Get(ctx, snapshotKey, &saved))
}

func TestRestoreWithoutSnapshot(t *testing.T) {
	kv := storage.NewKV(storage.NewMemoryBackend(0), "mindwell", zerolog.Nop())
	store := state.NewStore(state.Initial(), zerolog.Nop())
	assert.False(t, NewPersister(store, kv, 0, zerolog.Nop()).Restore(ctx))
	assert.Equal(t, state.Initial(), store.State())
}
