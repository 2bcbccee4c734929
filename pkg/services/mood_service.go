package services

import (
	"time"

	"github.com/rs/zerolog"

	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/recommend"
	"mindwell/pkg/state"
	"mindwell/pkg/utils"
)

// CheckInResult is what the user sees after logging a mood
type CheckInResult struct {
	Entry           models.MoodEntry `json:"entry"`
	Recommendations []string         `json:"recommendations"`
}

// MoodSummary aggregates the mood history
type MoodSummary struct {
	Total      int                 `json:"total"`
	Counts     map[models.Mood]int `json:"counts"`
	MostCommon models.Mood         `json:"most_common,omitempty"`
	Current    models.Mood         `json:"current,omitempty"`
}

// TrendLength is how many check-ins the mood chart shows by default
const TrendLength = 7

// TrendPoint is one check-in placed on the mood chart
type TrendPoint struct {
	EntryID   string      `json:"entry_id"`
	Mood      models.Mood `json:"mood"`
	Level     int         `json:"level"`
	Timestamp time.Time   `json:"timestamp"`
}

// MoodService handles mood check-ins
type MoodService struct {
	store     *state.Store
	validator *errors.Validator
	now       func() time.Time
	logger    zerolog.Logger
}

// NewMoodService creates a new mood service
func NewMoodService(store *state.Store, logger zerolog.Logger) *MoodService {
	return &MoodService{
		store:     store,
		validator: errors.NewValidator(),
		now:       time.Now,
		logger:    logger.With().Str("service", "mood").Logger(),
	}
}

// CheckIn records mood for the signed-in user and returns suggestions
func (s *MoodService) CheckIn(mood models.Mood, notes string) (*CheckInResult, error) {
	if s.store.State().User == nil {
		return nil, errors.ErrNotAuthenticated
	}
	if result := s.validator.ValidateMood(mood); !result.IsValid {
		return nil, result.GetFirstError()
	}

	entry := models.MoodEntry{
		ID:        utils.NewID(),
		Mood:      mood,
		Timestamp: s.now(),
		Notes:     notes,
	}
	_, applied := s.store.Update(func(current state.State) (state.Action, bool) {
		if !current.IsAuthenticated || current.User == nil {
			return nil, false
		}
		entry.UserID = current.User.ID
		return state.AddMoodEntry{Entry: entry}, true
	})
	if !applied {
		return nil, errors.ErrNotAuthenticated
	}

	s.logger.Info().Str("mood", string(mood)).Msg("mood check-in recorded")
	return &CheckInResult{
		Entry:           entry,
		Recommendations: recommend.ForMood(mood),
	}, nil
}

// History returns up to limit entries, newest first. limit <= 0 returns all.
func (s *MoodService) History(limit int) []models.MoodEntry {
	entries := s.store.State().MoodEntries
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	out := make([]models.MoodEntry, len(entries))
	copy(out, entries)
	return out
}

// Trend returns the n newest check-ins oldest first, ready for charting.
// n <= 0 uses TrendLength.
func (s *MoodService) Trend(n int) []TrendPoint {
	if n <= 0 {
		n = TrendLength
	}
	entries := s.store.State().MoodEntries
	if n < len(entries) {
		entries = entries[:n]
	}

	points := make([]TrendPoint, len(entries))
	for i, e := range entries {
		points[len(entries)-1-i] = TrendPoint{
			EntryID:   e.ID,
			Mood:      e.Mood,
			Level:     e.Mood.Level(),
			Timestamp: e.Timestamp,
		}
	}
	return points
}

// Summary counts check-ins per mood. Ties for most common go to the mood
// listed first.
func (s *MoodService) Summary() MoodSummary {
	current := s.store.State()
	summary := MoodSummary{
		Total:   len(current.MoodEntries),
		Counts:  make(map[models.Mood]int),
		Current: current.CurrentMood,
	}
	for _, e := range current.MoodEntries {
		summary.Counts[e.Mood]++
	}

	best := 0
	for _, m := range models.AllMoods() {
		if n := summary.Counts[m]; n > best {
			best = n
			summary.MostCommon = m
		}
	}
	return summary
}
