package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"mindwell/pkg/auth"
	"mindwell/pkg/services"
)

// AuthHandlers contains authentication-related handlers
type AuthHandlers struct {
	auth     *services.AuthService
	sessions *auth.Manager
	logger   zerolog.Logger
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authService *services.AuthService, sessions *auth.Manager, logger zerolog.Logger) *AuthHandlers {
	return &AuthHandlers{
		auth:     authService,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginHandler signs the mock user in and sets the session cookie
func (h *AuthHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	user, sessionID := h.auth.Login()
	h.sessions.SetCookie(w, sessionID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":           user,
		"consent_notice": h.auth.ConsentNotice(),
	})
}

// ConsentNoticeHandler returns the privacy statement shown before consent
func (h *AuthHandlers) ConsentNoticeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"notice": h.auth.ConsentNotice()})
}

// ConsentHandler records the user's consent
func (h *AuthHandlers) ConsentHandler(w http.ResponseWriter, r *http.Request) {
	var req services.Agreements
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	if err := h.auth.AcceptConsent(req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LogoutHandler wipes all user state and clears the cookie
func (h *AuthHandlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	h.sessions.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler returns the signed-in user
func (h *AuthHandlers) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.CurrentUser()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
