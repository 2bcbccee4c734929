package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodValid(t *testing.T) {
	for _, m := range AllMoods() {
		assert.True(t, m.Valid(), m)
		assert.NotEmpty(t, m.Label(), m)
		assert.NotEmpty(t, m.Color(), m)
	}
	assert.Len(t, AllMoods(), 8)
	assert.False(t, Mood("furious").Valid())
	assert.False(t, Mood("").Valid())
	assert.Empty(t, Mood("furious").Label())
}

func TestParseMood(t *testing.T) {
	m, ok := ParseMood("  Very-Happy ")
	require.True(t, ok)
	assert.Equal(t, MoodVeryHappy, m)

	_, ok = ParseMood("meh")
	assert.False(t, ok)
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "John", (&User{Name: "John Doe"}).FirstName())
	assert.Equal(t, "", (&User{}).FirstName())
	var u *User
	assert.Equal(t, "", u.FirstName())
}

func TestJournalEntryCloneDoesNotShareTags(t *testing.T) {
	e := JournalEntry{ID: "a", Tags: []string{"x", "y"}}
	c := e.Clone()
	c.Tags[0] = "changed"
	assert.Equal(t, "x", e.Tags[0])
}

func TestTierValid(t *testing.T) {
	assert.True(t, TierSevere.Valid())
	assert.False(t, Tier("extreme").Valid())
}

func TestMoodLevel(t *testing.T) {
	levels := map[Mood]int{
		MoodVeryHappy: 5,
		MoodHappy:     4,
		MoodExcited:   4,
		MoodNeutral:   3,
		MoodAnxious:   2,
		MoodSad:       2,
		MoodAngry:     1,
		MoodVerySad:   1,
	}
	for m, want := range levels {
		assert.Equal(t, want, m.Level(), m)
		assert.LessOrEqual(t, m.Level(), MaxMoodLevel)
	}
	assert.Zero(t, Mood("furious").Level())
}

func TestMoodEmoji(t *testing.T) {
	assert.Equal(t, "😊", MoodVeryHappy.Emoji())
	assert.Equal(t, "🙂", MoodHappy.Emoji())
	assert.Equal(t, "😡", MoodAngry.Emoji())
	assert.Equal(t, "😰", MoodAnxious.Emoji())
}
