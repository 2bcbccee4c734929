package types

import (
	"mindwell/pkg/chat"
	"mindwell/pkg/models"
)

// MoodOption is a selectable mood with its display attributes
type MoodOption struct {
	Mood  models.Mood `json:"mood"`
	Label string      `json:"label"`
	Emoji string      `json:"emoji"`
	Color string      `json:"color"`
}

// ConvertMoodOptions lists every mood in display order
func ConvertMoodOptions() []MoodOption {
	moods := models.AllMoods()
	options := make([]MoodOption, len(moods))
	for i, m := range moods {
		options[i] = MoodOption{Mood: m, Label: m.Label(), Emoji: m.Emoji(), Color: m.Color()}
	}
	return options
}

// ChatTranscript is a conversation as sent to clients
type ChatTranscript struct {
	ID       string               `json:"id"`
	Typing   bool                 `json:"typing"`
	Messages []models.ChatMessage `json:"messages"`
}

// ConvertChatSession snapshots a session's transcript
func ConvertChatSession(session *chat.Session) ChatTranscript {
	if session == nil {
		return ChatTranscript{Messages: []models.ChatMessage{}}
	}

	return ChatTranscript{
		ID:       session.ID,
		Typing:   session.Typing(),
		Messages: session.Messages(),
	}
}
