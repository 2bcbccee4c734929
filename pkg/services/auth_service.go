package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"mindwell/pkg/auth"
	"mindwell/pkg/crypto"
	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/state"
	"mindwell/pkg/storage"
)

// Agreements are the consent items a user must accept before using the app
type Agreements struct {
	DataCollection      bool `json:"data_collection"`
	DataUse             bool `json:"data_use"`
	MentalHealthSupport bool `json:"mental_health_support"`
	EmergencyContact    bool `json:"emergency_contact"`
	AgeConfirmation     bool `json:"age_confirmation"`
}

func (a Agreements) all() bool {
	return a.DataCollection && a.DataUse && a.MentalHealthSupport && a.EmergencyContact && a.AgeConfirmation
}

// AuthService handles the sign-in stub, consent and logout
type AuthService struct {
	store       *state.Store
	sessions    *auth.Manager
	kv          *storage.KV
	codec       crypto.Codec
	chat        *ChatService
	assessments *AssessmentService
	now         func() time.Time
	logger      zerolog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(store *state.Store, sessions *auth.Manager, kv *storage.KV, codec crypto.Codec,
	chat *ChatService, assessments *AssessmentService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		store:       store,
		sessions:    sessions,
		kv:          kv,
		codec:       codec,
		chat:        chat,
		assessments: assessments,
		now:         time.Now,
		logger:      logger.With().Str("service", "auth").Logger(),
	}
}

// MockUser is the identity every login produces until real OAuth exists
func MockUser(now time.Time) models.User {
	return models.User{
		ID:        "user-123",
		Email:     "john.doe@mmdc.edu.ph",
		Name:      "John Doe",
		StudentID: "MMDC-2024-001",
		JoinedAt:  now,
	}
}

// Login signs the mock user in and opens a browser session
func (s *AuthService) Login() (models.User, string) {
	user := MockUser(s.now())
	s.store.Update(func(current state.State) (state.Action, bool) {
		if current.User != nil && current.User.ID == user.ID {
			// signing in again keeps what we already know about the user
			user = *current.User
		}
		return state.SetUser{User: user}, true
	})
	sessionID := s.sessions.CreateSession(user.ID)

	s.logger.Info().Str("user_id", user.ID).Msg("user signed in")
	return user, sessionID
}

// ConsentNotice returns the privacy statement matching the journal codec
func (s *AuthService) ConsentNotice() string {
	return crypto.ConsentNotice(s.codec)
}

// AcceptConsent records consent once every agreement is accepted
func (s *AuthService) AcceptConsent(a Agreements) error {
	if s.store.State().User == nil {
		return errors.ErrNotAuthenticated
	}
	if !a.all() {
		return errors.ErrConsentIncomplete
	}

	_, applied := s.store.Update(func(current state.State) (state.Action, bool) {
		return state.AcceptConsent{}, current.IsAuthenticated && current.User != nil
	})
	if !applied {
		return errors.ErrNotAuthenticated
	}
	return nil
}

// Logout ends every session and wipes in-memory and persisted state
func (s *AuthService) Logout(ctx context.Context) {
	s.chat.CloseAll()
	s.assessments.Reset()
	s.sessions.DeleteAll()
	s.store.Dispatch(state.Logout{})
	s.kv.Clear(ctx)

	s.logger.Info().Msg("user signed out")
}

// Authenticated reports whether r carries a live session for the signed-in
// user.
func (s *AuthService) Authenticated(r *http.Request) bool {
	session := s.sessions.GetSession(r)
	if session == nil {
		return false
	}
	current := s.store.State()
	return current.IsAuthenticated && current.User != nil && current.User.ID == session.UserID
}

// CurrentUser returns the signed-in user
func (s *AuthService) CurrentUser() (models.User, error) {
	current := s.store.State()
	if !current.IsAuthenticated || current.User == nil {
		return models.User{}, errors.ErrNotAuthenticated
	}
	return *current.User, nil
}
