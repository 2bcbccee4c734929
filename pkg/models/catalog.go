package models

// WellnessVideo is a guided exercise video
type WellnessVideo struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Duration     int    `json:"duration"` // seconds
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
	Difficulty   string `json:"difficulty"`
}

// SoundTrack is an ambient sound used for relaxation
type SoundTrack struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	AudioURL    string `json:"audio_url"`
}
