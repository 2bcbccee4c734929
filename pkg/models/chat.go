package models

import "time"

// ChatMessage is one line of a chat transcript. Exactly one of Message
// (user authored) or Response (assistant authored) is set.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message,omitempty"`
	Response  string    `json:"response,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Mood      Mood      `json:"mood,omitempty"`
}

// FromUser reports whether the message was typed by the user
func (m ChatMessage) FromUser() bool {
	return m.Message != ""
}
