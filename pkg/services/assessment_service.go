package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"mindwell/pkg/assessment"
	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/state"
)

// AssessmentService runs the self-check questionnaire. Only the latest
// result is kept and it is never persisted.
type AssessmentService struct {
	store  *state.Store
	mutex  sync.RWMutex
	last   *models.Assessment
	now    func() time.Time
	logger zerolog.Logger
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(store *state.Store, logger zerolog.Logger) *AssessmentService {
	return &AssessmentService{
		store:  store,
		now:    time.Now,
		logger: logger.With().Str("service", "assessment").Logger(),
	}
}

// Questions returns the questionnaire
func (s *AssessmentService) Questions() []assessment.Question {
	return assessment.Questions()
}

// Submit scores an ordered answer sheet
func (s *AssessmentService) Submit(answers []int) (*models.Assessment, error) {
	current := s.store.State()
	if current.User == nil {
		return nil, errors.ErrNotAuthenticated
	}

	result, err := assessment.Evaluate(current.User.ID, answers, s.now())
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.last = result
	s.mutex.Unlock()

	s.logger.Info().Str("tier", string(result.Tier)).Float64("score", result.Score).Msg("assessment completed")
	return result, nil
}

// SubmitResponses scores responses keyed by question id
func (s *AssessmentService) SubmitResponses(responses []models.AssessmentResponse) (*models.Assessment, error) {
	answers, err := assessment.ParseResponses(responses)
	if err != nil {
		return nil, err
	}
	return s.Submit(answers)
}

// Last returns the most recent result
func (s *AssessmentService) Last() (*models.Assessment, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.last == nil {
		return nil, errors.ErrAssessmentNotFound
	}
	cp := *s.last
	return &cp, nil
}

// Reset discards the latest result so the questionnaire can be retaken
func (s *AssessmentService) Reset() {
	s.mutex.Lock()
	s.last = nil
	s.mutex.Unlock()
}
