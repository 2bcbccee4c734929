package services

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/state"
)

// logoutClock signs the user out the moment a service asks for the time,
// which is after its sign-in check and before it writes.
func logoutClock(f *fixture) func() time.Time {
	return func() time.Time {
		f.auth.Logout(ctx)
		return time.Now()
	}
}

func TestLogoutDuringCheckInStaysLoggedOut(t *testing.T) {
	f := newFixture(t)
	p := NewPersister(f.store, f.kv, 0, zerolog.Nop())
	p.Start()
	defer p.Stop()

	f.login(t)
	f.moods.now = logoutClock(f)

	_, err := f.moods.CheckIn(models.MoodHappy, "")
	assert.True(t, stderrors.Is(err, errors.ErrNotAuthenticated))
	assert.Equal(t, state.Initial(), f.store.State())

	var saved state.State
	assert.False(t, f.kv.Get(ctx, snapshotKey, &saved))
}

func TestLogoutDuringJournalCreateStaysLoggedOut(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	f.journal.now = logoutClock(f)

	_, err := f.journal.Create(JournalInput{Title: "t", Content: "c"})
	assert.True(t, stderrors.Is(err, errors.ErrNotAuthenticated))
	assert.Equal(t, state.Initial(), f.store.State())
}

func TestLogoutDuringJournalUpdateReportsNotFound(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	created, err := f.journal.Create(JournalInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	f.journal.now = logoutClock(f)
	_, err = f.journal.Update(created.ID, JournalInput{Title: "t2", Content: "c2"})
	assert.True(t, stderrors.Is(err, errors.ErrJournalEntryNotFound))
	assert.Equal(t, state.Initial(), f.store.State())
}

func TestConsentKeepsLatestCheckIn(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f.moods.now = fixedClock(at)

	_, err := f.moods.CheckIn(models.MoodNeutral, "")
	require.NoError(t, err)
	require.NoError(t, f.auth.AcceptConsent(allAgreed()))

	current := f.store.State()
	assert.True(t, current.User.HasConsented)
	require.NotNil(t, current.User.LastMoodCheckIn)
	assert.Equal(t, at, *current.User.LastMoodCheckIn)
}
