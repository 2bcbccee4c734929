package auth

import (
	"net/http"
	"sync"
	"time"

	"mindwell/pkg/models"
	"mindwell/pkg/utils"
)

const (
	SessionTimeout = 30 * time.Minute
	CookieName     = "session"
)

// Manager tracks browser sessions for the signed-in user
type Manager struct {
	sessions      map[string]*models.Session
	sessionsMutex sync.RWMutex
	now           func() time.Time
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*models.Session),
		now:      time.Now,
	}
}

// CreateSession starts a session for userID and returns its id
func (m *Manager) CreateSession(userID string) string {
	sessionID := utils.GenerateSessionID()

	m.sessionsMutex.Lock()
	m.sessions[sessionID] = &models.Session{
		UserID:    userID,
		ExpiresAt: m.now().Add(SessionTimeout),
	}
	m.sessionsMutex.Unlock()

	return sessionID
}

// SetCookie writes the session cookie for sessionID
func (m *Manager) SetCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(SessionTimeout.Seconds()),
	})
}

// ClearCookie expires the session cookie
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// GetSession retrieves and validates the request's session, extending it
func (m *Manager) GetSession(r *http.Request) *models.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	m.sessionsMutex.Lock()
	defer m.sessionsMutex.Unlock()

	session, exists := m.sessions[cookie.Value]
	if !exists {
		return nil
	}
	if m.now().After(session.ExpiresAt) {
		delete(m.sessions, cookie.Value)
		return nil
	}

	session.ExpiresAt = m.now().Add(SessionTimeout)
	cp := *session
	return &cp
}

// DeleteAll ends every session. Used on logout since there is one user.
func (m *Manager) DeleteAll() {
	m.sessionsMutex.Lock()
	m.sessions = make(map[string]*models.Session)
	m.sessionsMutex.Unlock()
}

// CleanupExpiredSessions drops sessions past their expiry and returns how
// many were removed
func (m *Manager) CleanupExpiredSessions() int {
	m.sessionsMutex.Lock()
	defer m.sessionsMutex.Unlock()

	now := m.now()
	removed := 0
	for id, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.sessionsMutex.RLock()
	defer m.sessionsMutex.RUnlock()
	return len(m.sessions)
}
