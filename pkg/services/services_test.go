package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"mindwell/pkg/auth"
	"mindwell/pkg/crypto"
	"mindwell/pkg/state"
	"mindwell/pkg/storage"
)

type fixture struct {
	store      *state.Store
	backend    *storage.MemoryBackend
	kv         *storage.KV
	sessions   *auth.Manager
	auth       *AuthService
	moods      *MoodService
	journal    *JournalService
	assessment *AssessmentService
	chat       *ChatService
	dashboard  *DashboardService
	search     *SearchService
	ui         *UIService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zerolog.Nop()

	f := &fixture{
		store:    state.NewStore(state.Initial(), log),
		backend:  storage.NewMemoryBackend(0),
		sessions: auth.NewManager(),
	}
	f.kv = storage.NewKV(f.backend, "mindwell", log)
	f.moods = NewMoodService(f.store, log)
	f.journal = NewJournalService(f.store, crypto.NewEncoder(), log)
	f.assessment = NewAssessmentService(f.store, log)
	f.chat = NewChatService(f.store, 0, log)
	f.auth = NewAuthService(f.store, f.sessions, f.kv, crypto.NewEncoder(), f.chat, f.assessment, log)
	f.dashboard = NewDashboardService(f.store, f.moods, f.journal)
	f.search = NewSearchService(f.store)
	f.ui = NewUIService(f.store)
	t.Cleanup(f.chat.CloseAll)
	return f
}

func (f *fixture) login(t *testing.T) string {
	t.Helper()
	_, sessionID := f.auth.Login()
	require.NotEmpty(t, sessionID)
	return sessionID
}

func requestWithSession(id string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: id})
	return r
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

var ctx = context.Background()
