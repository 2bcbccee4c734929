package chat

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/schedule"
)

// DefaultTypingDelay is how long the assistant "types" before replying
const DefaultTypingDelay = 1500 * time.Millisecond

// Session is one conversation. The transcript is kept in the order lines
// were produced, oldest first.
type Session struct {
	ID string

	mutex     sync.Mutex
	userID    string
	messages  []models.ChatMessage
	pending   int
	closed    bool
	delay     time.Duration
	scheduler *schedule.Scheduler
	now       func() time.Time
	logger    zerolog.Logger
}

// NewSession opens a conversation for user, seeded with the welcome line
func NewSession(user models.User, delay time.Duration, logger zerolog.Logger) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		userID:    user.ID,
		delay:     delay,
		scheduler: schedule.New(),
		now:       time.Now,
	}
	s.logger = logger.With().Str("component", "chat").Str("session", s.ID).Logger()
	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Response:  Welcome(user.FirstName()),
		Timestamp: s.now(),
	})
	return s
}

// Send appends the user's message and schedules the assistant's reply.
// The returned message is the user's line.
func (s *Session) Send(text string, mood models.Mood) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, errors.ErrEmptyMessage
	}

	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return models.ChatMessage{}, errors.ErrChatSessionNotFound.WithContext("session", s.ID)
	}
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    s.userID,
		Message:   text,
		Timestamp: s.now(),
		Mood:      mood,
	}
	s.messages = append(s.messages, msg)
	s.pending++
	s.mutex.Unlock()

	if IsCrisis(text) {
		s.logger.Warn().Msg("crisis language detected, replying with emergency resources")
	}

	reply := Respond(text)
	if s.delay <= 0 {
		s.deliver(reply)
		return msg, nil
	}
	if !s.scheduler.After("reply:"+msg.ID, s.delay, func() { s.deliver(reply) }) {
		s.abandonReply()
	}
	return msg, nil
}

// abandonReply undoes the pending count for a reply that was never
// scheduled. Close already zeroed the count if it got there first.
func (s *Session) abandonReply() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.closed && s.pending > 0 {
		s.pending--
	}
}

// deliver appends a reply unless the session was closed while it waited
func (s *Session) deliver(reply string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		s.logger.Debug().Msg("dropped reply for closed session")
		return
	}
	s.messages = append(s.messages, models.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    s.userID,
		Response:  reply,
		Timestamp: s.now(),
	})
	s.pending--
}

// Messages returns a copy of the transcript
func (s *Session) Messages() []models.ChatMessage {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Typing reports whether a reply is still pending
func (s *Session) Typing() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.pending > 0
}

// Close cancels pending replies. No line is appended after Close returns.
func (s *Session) Close() {
	s.mutex.Lock()
	s.closed = true
	s.pending = 0
	s.mutex.Unlock()

	s.scheduler.Close()
}
