package errors

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	// Authentication errors
	ErrTypeAuth ErrorType = "authentication"
	// Missing entities
	ErrTypeNotFound ErrorType = "not_found"
	// Configuration errors
	ErrTypeConfig ErrorType = "configuration"
	// Validation errors
	ErrTypeValidation ErrorType = "validation"
	// Encoding/decoding errors
	ErrTypeCrypto ErrorType = "crypto"
	// Storage errors
	ErrTypeStorage ErrorType = "storage"
	// Generic application errors
	ErrTypeApp ErrorType = "application"
)

// AppError represents a structured application error
type AppError struct {
	Type        ErrorType              `json:"type"`
	Code        string                 `json:"code"`
	Message     string                 `json:"message"`
	UserMessage string                 `json:"userMessage"`
	InternalErr error                  `json:"-"`
	Context     map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.InternalErr != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Type, e.Code, e.Message, e.InternalErr)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
}

// Unwrap exposes the wrapped error to errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.InternalErr
}

// Is matches any AppError with the same type and code, so the predefined
// errors below work as sentinels.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Code == t.Code
}

// GetUserMessage returns a user-friendly error message
func (e *AppError) GetUserMessage() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return e.Message
}

// WithContext returns a copy of the error with an extra context value.
// The receiver is left untouched so predefined errors stay shareable.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	cp := *e
	cp.Context = make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		cp.Context[k] = v
	}
	cp.Context[key] = value
	return &cp
}

// WithUserMessage sets a user-friendly message
func (e *AppError) WithUserMessage(msg string) *AppError {
	e.UserMessage = msg
	return e
}

// Log writes the error to logger at error level
func (e *AppError) Log(logger zerolog.Logger) {
	ev := logger.Error().
		Str("type", string(e.Type)).
		Str("code", e.Code)
	if e.InternalErr != nil {
		ev = ev.Err(e.InternalErr)
	}
	if len(e.Context) > 0 {
		ev = ev.Fields(e.Context)
	}
	ev.Msg(e.Message)
}

// New creates a new AppError
func New(errType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:    errType,
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, code, message string) *AppError {
	return &AppError{
		Type:        errType,
		Code:        code,
		Message:     message,
		InternalErr: err,
	}
}

// Predefined errors for common scenarios
var (
	// Authentication errors
	ErrNotAuthenticated = New(ErrTypeAuth, "NOT_AUTHENTICATED", "user not authenticated").
				WithUserMessage("Please log in to continue")

	// Not found errors
	ErrJournalEntryNotFound = New(ErrTypeNotFound, "JOURNAL_ENTRY_NOT_FOUND", "journal entry not found").
				WithUserMessage("The requested journal entry could not be found")

	ErrChatSessionNotFound = New(ErrTypeNotFound, "CHAT_SESSION_NOT_FOUND", "chat session not found").
				WithUserMessage("This conversation has ended. Start a new chat")

	ErrAssessmentNotFound = New(ErrTypeNotFound, "ASSESSMENT_NOT_FOUND", "no assessment completed").
				WithUserMessage("You have not completed an assessment yet")

	// Validation errors
	ErrInvalidMood = New(ErrTypeValidation, "INVALID_MOOD", "unknown mood").
			WithUserMessage("Please choose one of the listed moods")

	ErrTitleRequired = New(ErrTypeValidation, "TITLE_REQUIRED", "journal title is required").
				WithUserMessage("Please give your entry a title")

	ErrContentRequired = New(ErrTypeValidation, "CONTENT_REQUIRED", "journal content is required").
				WithUserMessage("Please write something before saving")

	ErrIncompleteAssessment = New(ErrTypeValidation, "ASSESSMENT_INCOMPLETE", "every question must be answered").
				WithUserMessage("Please answer every question before submitting")

	ErrAnswerOutOfRange = New(ErrTypeValidation, "ANSWER_OUT_OF_RANGE", "answer must be between 0 and 3").
				WithUserMessage("Please pick one of the offered answers")

	ErrConsentIncomplete = New(ErrTypeValidation, "CONSENT_INCOMPLETE", "every consent item must be accepted").
				WithUserMessage("Please review and accept every item to continue")

	ErrEmptyMessage = New(ErrTypeValidation, "MESSAGE_EMPTY", "chat message is empty").
			WithUserMessage("Type a message to send")

	// Configuration errors
	ErrConfigLoadFailed = New(ErrTypeConfig, "CONFIG_LOAD_FAILED", "failed to load configuration").
				WithUserMessage("Configuration could not be loaded")

	// Crypto errors
	ErrEncryptionFailed = New(ErrTypeCrypto, "ENCRYPT_FAILED", "encryption failed").
				WithUserMessage("Unable to protect your entry. Please try again")
)
