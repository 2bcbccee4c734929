package errors

import (
	"strings"

	"mindwell/pkg/models"
)

// MaxJournalContent bounds the size of a single journal entry
const MaxJournalContent = 1024 * 1024

// ValidationResult holds validation results
type ValidationResult struct {
	IsValid bool
	Errors  []*AppError
}

// AddError adds an error to the validation result
func (vr *ValidationResult) AddError(err *AppError) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, err)
}

// GetFirstError returns the first error or nil
func (vr *ValidationResult) GetFirstError() *AppError {
	if len(vr.Errors) > 0 {
		return vr.Errors[0]
	}
	return nil
}

// Validator provides validation utilities
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateMood checks that mood is one of the known moods
func (v *Validator) ValidateMood(mood models.Mood) *ValidationResult {
	result := &ValidationResult{IsValid: true}
	if !mood.Valid() {
		result.AddError(ErrInvalidMood.WithContext("mood", string(mood)))
	}
	return result
}

// ValidateOptionalMood accepts the empty mood as well as any known mood
func (v *Validator) ValidateOptionalMood(mood models.Mood) *ValidationResult {
	if mood == "" {
		return &ValidationResult{IsValid: true}
	}
	return v.ValidateMood(mood)
}

// ValidateJournalEntry validates the user supplied parts of a journal entry
func (v *Validator) ValidateJournalEntry(title, content string) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	if strings.TrimSpace(title) == "" {
		result.AddError(ErrTitleRequired)
	}
	if strings.TrimSpace(content) == "" {
		result.AddError(ErrContentRequired)
	}
	if len(content) > MaxJournalContent {
		result.AddError(New(ErrTypeValidation, "CONTENT_TOO_LARGE", "journal content too large").
			WithUserMessage("Entry is too large. Maximum size is 1MB").
			WithContext("size", len(content)))
	}

	return result
}

// ValidateAnswers checks an answer sheet against the expected question count
func (v *Validator) ValidateAnswers(answers []int, questions int) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	if len(answers) != questions {
		result.AddError(ErrIncompleteAssessment.
			WithContext("expected", questions).
			WithContext("got", len(answers)))
		return result
	}
	for i, a := range answers {
		if a < 0 || a > 3 {
			result.AddError(ErrAnswerOutOfRange.
				WithContext("question", i+1).
				WithContext("answer", a))
		}
	}

	return result
}

// ValidateID validates an entity id taken from a request
func (v *Validator) ValidateID(id string) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	if strings.TrimSpace(id) == "" {
		result.AddError(New(ErrTypeValidation, "ID_EMPTY", "id cannot be empty").
			WithUserMessage("An id is required"))
	}

	return result
}
