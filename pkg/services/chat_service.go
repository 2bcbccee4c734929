package services

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"mindwell/pkg/chat"
	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/state"
)

// ChatService owns the open chat sessions
type ChatService struct {
	store    *state.Store
	delay    time.Duration
	mutex    sync.Mutex
	sessions map[string]*chat.Session
	logger   zerolog.Logger
}

// NewChatService creates a chat service whose replies arrive after delay
func NewChatService(store *state.Store, delay time.Duration, logger zerolog.Logger) *ChatService {
	return &ChatService{
		store:    store,
		delay:    delay,
		sessions: make(map[string]*chat.Session),
		logger:   logger,
	}
}

// Start opens a new conversation for the signed-in user
func (s *ChatService) Start() (*chat.Session, error) {
	current := s.store.State()
	if current.User == nil {
		return nil, errors.ErrNotAuthenticated
	}

	session := chat.NewSession(*current.User, s.delay, s.logger)
	s.mutex.Lock()
	s.sessions[session.ID] = session
	s.mutex.Unlock()
	return session, nil
}

// Get returns an open session
func (s *ChatService) Get(id string) (*chat.Session, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, errors.ErrChatSessionNotFound.WithContext("session", id)
	}
	return session, nil
}

// Send posts text to session id, tagged with the current mood
func (s *ChatService) Send(id, text string) (models.ChatMessage, error) {
	session, err := s.Get(id)
	if err != nil {
		return models.ChatMessage{}, err
	}
	return session.Send(text, s.store.State().CurrentMood)
}

// Close ends session id and cancels its pending reply
func (s *ChatService) Close(id string) error {
	s.mutex.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mutex.Unlock()

	if !ok {
		return errors.ErrChatSessionNotFound.WithContext("session", id)
	}
	session.Close()
	return nil
}

// CloseAll ends every session
func (s *ChatService) CloseAll() {
	s.mutex.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*chat.Session)
	s.mutex.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}

// QuickPrompts returns suggested opening messages
func (s *ChatService) QuickPrompts() []string {
	return chat.QuickPrompts()
}
