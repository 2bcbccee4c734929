// Package state holds the application snapshot and the pure transition
// function that produces the next one.
package state

import "mindwell/pkg/models"

// State is an immutable snapshot of the whole application. Mood and journal
// entries are kept newest first.
type State struct {
	User            *models.User          `json:"user"`
	IsAuthenticated bool                  `json:"is_authenticated"`
	MoodEntries     []models.MoodEntry    `json:"mood_entries"`
	JournalEntries  []models.JournalEntry `json:"journal_entries"`
	CurrentMood     models.Mood           `json:"current_mood,omitempty"`
	IsLoading       bool                  `json:"is_loading"`
	HasSeenConsent  bool                  `json:"has_seen_consent"`
	SearchQuery     string                `json:"search_query"`
}

// Initial returns the signed-out empty state
func Initial() State {
	return State{
		MoodEntries:    []models.MoodEntry{},
		JournalEntries: []models.JournalEntry{},
	}
}

// JournalEntry looks up a journal entry by id
func (s State) JournalEntry(id string) (models.JournalEntry, bool) {
	for _, e := range s.JournalEntries {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return models.JournalEntry{}, false
}

// Clone returns a deep copy so callers can hold on to a snapshot without
// sharing backing arrays with the store.
func (s State) Clone() State {
	if s.User != nil {
		u := *s.User
		if u.LastMoodCheckIn != nil {
			t := *u.LastMoodCheckIn
			u.LastMoodCheckIn = &t
		}
		s.User = &u
	}
	moods := make([]models.MoodEntry, len(s.MoodEntries))
	copy(moods, s.MoodEntries)
	s.MoodEntries = moods

	journal := make([]models.JournalEntry, len(s.JournalEntries))
	for i, e := range s.JournalEntries {
		journal[i] = e.Clone()
	}
	s.JournalEntries = journal
	return s
}
