package models

import "strings"

// Mood is one of the fixed moods a user can check in with
type Mood string

const (
	MoodVeryHappy Mood = "very-happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very-sad"
	MoodAngry     Mood = "angry"
	MoodAnxious   Mood = "anxious"
	MoodExcited   Mood = "excited"
)

// MaxMoodLevel is the level of the brightest mood
const MaxMoodLevel = 5

type moodInfo struct {
	label string
	emoji string
	color string
	level int
}

var moodTable = map[Mood]moodInfo{
	MoodVeryHappy: {"Very Happy", "😊", "#22c55e", 5},
	MoodHappy:     {"Happy", "🙂", "#84cc16", 4},
	MoodNeutral:   {"Neutral", "😐", "#6b7280", 3},
	MoodSad:       {"Sad", "😢", "#3b82f6", 2},
	MoodVerySad:   {"Very Sad", "😭", "#1d4ed8", 1},
	MoodAngry:     {"Angry", "😡", "#ef4444", 1},
	MoodAnxious:   {"Anxious", "😰", "#f59e0b", 2},
	MoodExcited:   {"Excited", "🤩", "#8b5cf6", 4},
}

// AllMoods returns the moods in display order
func AllMoods() []Mood {
	return []Mood{
		MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad,
		MoodVerySad, MoodAngry, MoodAnxious, MoodExcited,
	}
}

// Valid reports whether m is one of the eight known moods
func (m Mood) Valid() bool {
	_, ok := moodTable[m]
	return ok
}

// Label returns the human readable name, or "" for unknown moods
func (m Mood) Label() string {
	return moodTable[m].label
}

// Emoji returns the emoji shown next to the mood
func (m Mood) Emoji() string {
	return moodTable[m].emoji
}

// Color returns the hex colour associated with the mood
func (m Mood) Color() string {
	return moodTable[m].color
}

// Level places the mood on a 1 (lowest) to 5 scale for charting. Unknown
// moods are 0.
func (m Mood) Level() int {
	return moodTable[m].level
}

// ParseMood normalizes s and reports whether it names a known mood
func ParseMood(s string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Valid()
}
