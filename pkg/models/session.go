package models

import "time"

// Session is a signed-in browser session keyed by cookie
type Session struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
