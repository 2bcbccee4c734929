package services

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell/pkg/crypto"
	"mindwell/pkg/errors"
	"mindwell/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateEncodesByDefault(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	view, err := f.journal.Create(JournalInput{
		Title:   "  Monday  ",
		Content: "Felt better after a walk",
		Mood:    models.MoodHappy,
		Tags:    []string{" walk ", "walk", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "Monday", view.Title)
	assert.Equal(t, "Felt better after a walk", view.Content)
	assert.True(t, view.IsEncrypted)
	assert.Equal(t, []string{"walk"}, view.Tags)

	stored := f.store.State().JournalEntries[0]
	assert.NotEqual(t, "Felt better after a walk", stored.Content)
	assert.Equal(t, "Felt better after a walk", crypto.NewEncoder().Decode(stored.Content))
}

func TestCreatePlaintextWhenOptedOut(t *testing.T) {
	f := newFixture(t)
	f.login(t)

	_, err := f.journal.Create(JournalInput{Title: "t", Content: "plain", IsEncrypted: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, "plain", f.store.State().JournalEntries[0].Content)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.journal.Create(JournalInput{Title: "t", Content: "c"})
	assert.True(t, stderrors.Is(err, errors.ErrNotAuthenticated))

	f.login(t)
	_, err = f.journal.Create(JournalInput{Title: " ", Content: "c"})
	assert.True(t, stderrors.Is(err, errors.ErrTitleRequired))
	_, err = f.journal.Create(JournalInput{Title: "t", Content: "\t"})
	assert.True(t, stderrors.Is(err, errors.ErrContentRequired))
	_, err = f.journal.Create(JournalInput{Title: "t", Content: "c", Mood: "furious"})
	assert.True(t, stderrors.Is(err, errors.ErrInvalidMood))
	assert.Empty(t, f.store.State().JournalEntries)
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.journal.now = fixedClock(created)
	view, err := f.journal.Create(JournalInput{Title: "t", Content: "v1"})
	require.NoError(t, err)

	updated := created.Add(time.Hour)
	f.journal.now = fixedClock(updated)
	edited, err := f.journal.Update(view.ID, JournalInput{Title: "t2", Content: "v2"})
	require.NoError(t, err)

	assert.Equal(t, created, edited.CreatedAt)
	assert.Equal(t, updated, edited.UpdatedAt)
	assert.Equal(t, "v2", edited.Content)
	assert.Len(t, f.store.State().JournalEntries, 1)

	_, err = f.journal.Update("missing", JournalInput{Title: "t", Content: "c"})
	assert.True(t, stderrors.Is(err, errors.ErrJournalEntryNotFound))
}

func TestDeleteAndGet(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	view, err := f.journal.Create(JournalInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	got, err := f.journal.Get(view.ID)
	require.NoError(t, err)
	assert.Equal(t, "c", got.Content)

	require.NoError(t, f.journal.Delete(view.ID))
	_, err = f.journal.Get(view.ID)
	assert.True(t, stderrors.Is(err, errors.ErrJournalEntryNotFound))
	assert.True(t, stderrors.Is(f.journal.Delete(view.ID), errors.ErrJournalEntryNotFound))
}

func TestListFiltersOnDecodedContent(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	for _, in := range []JournalInput{
		{Title: "Exams", Content: "Studied all night", Mood: models.MoodAnxious},
		{Title: "Weekend", Content: "Hiking with friends", Mood: models.MoodHappy},
		{Title: "Notes", Content: "nothing much", IsEncrypted: boolPtr(false)},
	} {
		_, err := f.journal.Create(in)
		require.NoError(t, err)
	}

	all := f.journal.List(JournalFilter{Mood: "all"})
	require.Len(t, all, 3)
	assert.Equal(t, "Notes", all[0].Title)

	hits := f.journal.List(JournalFilter{Query: "HIKING"})
	require.Len(t, hits, 1)
	assert.Equal(t, "Weekend", hits[0].Title)

	byMood := f.journal.List(JournalFilter{Mood: "anxious"})
	require.Len(t, byMood, 1)
	assert.Equal(t, "Exams", byMood[0].Title)

	assert.Empty(t, f.journal.List(JournalFilter{Query: "hiking", Mood: "anxious"}))
	assert.NotNil(t, f.journal.List(JournalFilter{Query: "zzz"}))
}

func TestPreviewTruncates(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	long := strings.Repeat("x", 200)
	view, err := f.journal.Create(JournalInput{Title: "t", Content: long})
	require.NoError(t, err)

	assert.Equal(t, strings.Repeat("x", 150)+"...", view.Preview)
	assert.Equal(t, long, view.Content)
}

func TestJournalWithSealer(t *testing.T) {
	f := newFixture(t)
	f.login(t)
	cfg, err := crypto.NewKeyDerivationConfig()
	require.NoError(t, err)
	cfg.Iterations = 1000
	sealer, err := crypto.NewSealer("pass", cfg, zerolog.Nop())
	require.NoError(t, err)
	f.journal.codec = sealer

	view, err := f.journal.Create(JournalInput{Title: "t", Content: "private"})
	require.NoError(t, err)
	assert.Equal(t, "private", view.Content)
	assert.NotContains(t, f.store.State().JournalEntries[0].Content, "private")
	assert.Len(t, f.journal.List(JournalFilter{Query: "priv"}), 1)
}
