package state

import "mindwell/pkg/models"

// Reduce returns the state that results from applying a to s. It never
// modifies s or any slice reachable from it, and a nil action returns s
// unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetUser:
		u := a.User
		s.User = &u
		s.IsAuthenticated = true
	case Logout:
		return Initial()
	case AddMoodEntry:
		moods := make([]models.MoodEntry, 0, len(s.MoodEntries)+1)
		moods = append(moods, a.Entry)
		s.MoodEntries = append(moods, s.MoodEntries...)
		s.CurrentMood = a.Entry.Mood
		if s.User != nil {
			u := *s.User
			ts := a.Entry.Timestamp
			u.LastMoodCheckIn = &ts
			s.User = &u
		}
	case AddJournalEntry:
		journal := make([]models.JournalEntry, 0, len(s.JournalEntries)+1)
		journal = append(journal, a.Entry.Clone())
		s.JournalEntries = append(journal, s.JournalEntries...)
	case UpdateJournalEntry:
		idx := indexOfJournal(s.JournalEntries, a.Entry.ID)
		if idx < 0 {
			return s
		}
		journal := make([]models.JournalEntry, len(s.JournalEntries))
		copy(journal, s.JournalEntries)
		journal[idx] = a.Entry.Clone()
		s.JournalEntries = journal
	case DeleteJournalEntry:
		idx := indexOfJournal(s.JournalEntries, a.ID)
		if idx < 0 {
			return s
		}
		journal := make([]models.JournalEntry, 0, len(s.JournalEntries)-1)
		journal = append(journal, s.JournalEntries[:idx]...)
		s.JournalEntries = append(journal, s.JournalEntries[idx+1:]...)
	case SetCurrentMood:
		s.CurrentMood = a.Mood
	case SetLoading:
		s.IsLoading = a.Loading
	case SetConsentSeen:
		s.HasSeenConsent = a.Seen
	case AcceptConsent:
		if s.User == nil {
			return s
		}
		u := *s.User
		u.HasConsented = true
		s.User = &u
		s.HasSeenConsent = true
	case SetSearchQuery:
		s.SearchQuery = a.Query
	case Restore:
		return a.State.Clone()
	}
	return s
}

func indexOfJournal(entries []models.JournalEntry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
