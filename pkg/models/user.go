package models

import (
	"strings"
	"time"
)

// User is the signed-in identity. Login is stubbed so there is only ever one
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	StudentID       string     `json:"student_id,omitempty"`
	HasConsented    bool       `json:"has_consented"`
	LastMoodCheckIn *time.Time `json:"last_mood_check_in,omitempty"`
	JoinedAt        time.Time  `json:"joined_at"`
}

// FirstName returns the first word of the user's name
func (u *User) FirstName() string {
	if u == nil {
		return ""
	}
	if fields := strings.Fields(u.Name); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
