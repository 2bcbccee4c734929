package services

import (
	"mindwell/pkg/catalog"
	"mindwell/pkg/models"
	"mindwell/pkg/state"
)

// Dashboard is the home screen summary
type Dashboard struct {
	FirstName      string             `json:"first_name"`
	CurrentMood    models.Mood        `json:"current_mood,omitempty"`
	MoodCheckIns   int                `json:"mood_check_ins"`
	JournalEntries int                `json:"journal_entries"`
	RecentMoods    []models.MoodEntry `json:"recent_moods"`
	RecentJournal  []JournalView      `json:"recent_journal"`
}

// DashboardService assembles the home screen
type DashboardService struct {
	store   *state.Store
	moods   *MoodService
	journal *JournalService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(store *state.Store, moods *MoodService, journal *JournalService) *DashboardService {
	return &DashboardService{store: store, moods: moods, journal: journal}
}

// Dashboard returns counts with the three latest moods and two latest
// journal entries
func (s *DashboardService) Dashboard() Dashboard {
	current := s.store.State()
	return Dashboard{
		FirstName:      current.User.FirstName(),
		CurrentMood:    current.CurrentMood,
		MoodCheckIns:   len(current.MoodEntries),
		JournalEntries: len(current.JournalEntries),
		RecentMoods:    s.moods.History(3),
		RecentJournal:  s.journal.Recent(2),
	}
}

// SearchService backs the feature search box
type SearchService struct {
	store *state.Store
}

// NewSearchService creates a new search service
func NewSearchService(store *state.Store) *SearchService {
	return &SearchService{store: store}
}

// Search stores query and returns the matching features
func (s *SearchService) Search(query string) []catalog.Feature {
	s.store.Dispatch(state.SetSearchQuery{Query: query})
	return catalog.SearchFeatures(query)
}

// Clear resets the search box
func (s *SearchService) Clear() {
	s.store.Dispatch(state.SetSearchQuery{Query: ""})
}
