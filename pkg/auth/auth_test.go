package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: value})
	return r
}

func TestSessionLifecycle(t *testing.T) {
	m := NewManager()
	id := m.CreateSession("user-123")
	require.NotEmpty(t, id)

	s := m.GetSession(requestWithCookie(id))
	require.NotNil(t, s)
	assert.Equal(t, "user-123", s.UserID)

	m.DeleteAll()
	assert.Nil(t, m.GetSession(requestWithCookie(id)))
	assert.Zero(t, m.Count())
}

func TestGetSessionWithoutCookie(t *testing.T) {
	m := NewManager()
	assert.Nil(t, m.GetSession(httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Nil(t, m.GetSession(requestWithCookie("unknown")))
}

func TestExpiredSessionIsRemoved(t *testing.T) {
	m := NewManager()
	now := time.Now()
	m.now = func() time.Time { return now }
	id := m.CreateSession("user-123")

	m.now = func() time.Time { return now.Add(SessionTimeout + time.Second) }
	assert.Nil(t, m.GetSession(requestWithCookie(id)))
	assert.Zero(t, m.Count())
}

func TestSetCookie(t *testing.T) {
	m := NewManager()
	rec := httptest.NewRecorder()
	m.SetCookie(rec, "abc")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCleanupExpiredSessions(t *testing.T) {
	m := NewManager()
	now := time.Now()
	m.now = func() time.Time { return now }
	m.CreateSession("user-123")

	m.now = func() time.Time { return now.Add(SessionTimeout / 2) }
	fresh := m.CreateSession("user-123")

	m.now = func() time.Time { return now.Add(SessionTimeout + time.Second) }
	assert.Equal(t, 1, m.CleanupExpiredSessions())
	assert.Equal(t, 1, m.Count())
	assert.NotNil(t, m.GetSession(requestWithCookie(fresh)))
}
