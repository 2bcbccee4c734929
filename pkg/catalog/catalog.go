// Package catalog serves the static wellness content and the feature list
// used by search.
package catalog

import (
	"strings"

	"mindwell/pkg/models"
)

// AllCategories matches every item in a filter
const AllCategories = "all"

var videos = []models.WellnessVideo{
	{
		ID:           "1",
		Title:        "5-Minute Morning Breathing Exercise",
		Description:  "Start your day with this calming breathing routine to center yourself.",
		Category:     "breathing",
		Duration:     300,
		ThumbnailURL: "https://images.pexels.com/photos/3822622/pexels-photo-3822622.jpeg?auto=compress&cs=tinysrgb&w=400",
		VideoURL:     "https://www.youtube.com/embed/inpok4MKVLM",
		Difficulty:   "beginner",
	},
	{
		ID:           "2",
		Title:        "Mindful Body Scan Meditation",
		Description:  "A guided meditation to help you connect with your body and release tension.",
		Category:     "meditation",
		Duration:     900,
		ThumbnailURL: "https://images.pexels.com/photos/3094230/pexels-photo-3094230.jpeg?auto=compress&cs=tinysrgb&w=400",
		VideoURL:     "https://www.youtube.com/embed/15q-N-_kkrU",
		Difficulty:   "intermediate",
	},
	{
		ID:           "3",
		Title:        "Gentle Neck and Shoulder Stretches",
		Description:  "Perfect for students who spend long hours studying. Relieve tension and improve posture.",
		Category:     "stretching",
		Duration:     480,
		ThumbnailURL: "https://images.pexels.com/photos/4056723/pexels-photo-4056723.jpeg?auto=compress&cs=tinysrgb&w=400",
		VideoURL:     "https://www.youtube.com/embed/akgQbxhrhOc",
		Difficulty:   "beginner",
	},
	{
		ID:           "4",
		Title:        "Stress Relief Breathing Technique",
		Description:  "4-7-8 breathing method to quickly reduce anxiety and stress levels.",
		Category:     "breathing",
		Duration:     420,
		ThumbnailURL: "https://images.pexels.com/photos/1051838/pexels-photo-1051838.jpeg?auto=compress&cs=tinysrgb&w=400",
		VideoURL:     "https://www.youtube.com/embed/YRPh_GaiL8s",
		Difficulty:   "beginner",
	},
	{
		ID:           "5",
		Title:        "Walking Meditation for Students",
		Description:  "Learn how to practice mindfulness while walking between classes.",
		Category:     "mindfulness",
		Duration:     600,
		ThumbnailURL: "https://images.pexels.com/photos/1051838/pexels-photo-1051838.jpeg?auto=compress&cs=tinysrgb&w=400",
		VideoURL:     "https://www.youtube.com/embed/Cce5KUSnCu0",
		Difficulty:   "beginner",
	},
	{
		ID:           "6",
		Title:        "Full Body Relaxation Stretch",
		Description:  "Complete stretching routine to unwind after a long day of studies.",
		Category:     "stretching",
		Duration:     1200,
		ThumbnailURL: "https://images.pexels.com/photos/4056723/pexels-photo-4056723.jpeg?auto=compress&cs=tinysrgb&w=400",
		VideoURL:     "https://www.youtube.com/embed/g_tea8ZNk5A",
		Difficulty:   "intermediate",
	},
}

// Audio URLs are placeholders until licensed recordings are hosted
var sounds = []models.SoundTrack{
	{ID: "1", Name: "Ocean Waves", Category: "Nature", Description: "Gentle ocean waves for deep relaxation", Color: "blue", Icon: "🌊", AudioURL: "https://www.soundjay.com/misc/sounds/ocean-wave-1.wav"},
	{ID: "2", Name: "Forest Rain", Category: "Nature", Description: "Peaceful rainfall in a lush forest", Color: "green", Icon: "🌧️", AudioURL: "https://www.soundjay.com/misc/sounds/rain-1.wav"},
	{ID: "3", Name: "White Noise", Category: "Focus", Description: "Pure white noise for concentration", Color: "gray", Icon: "⚪", AudioURL: "https://www.soundjay.com/misc/sounds/white-noise-1.wav"},
	{ID: "4", Name: "Tibetan Bowls", Category: "Meditation", Description: "Healing vibrations from Tibetan singing bowls", Color: "purple", Icon: "🔔", AudioURL: "https://www.soundjay.com/misc/sounds/bell-1.wav"},
	{ID: "5", Name: "Crackling Fire", Category: "Comfort", Description: "Warm and cozy fireplace sounds", Color: "orange", Icon: "🔥", AudioURL: "https://www.soundjay.com/misc/sounds/fire-1.wav"},
	{ID: "6", Name: "Birds Chirping", Category: "Nature", Description: "Morning birds in a peaceful garden", Color: "yellow", Icon: "🐦", AudioURL: "https://www.soundjay.com/misc/sounds/birds-1.wav"},
	{ID: "7", Name: "Deep Binaural", Category: "Focus", Description: "Binaural beats for deep concentration", Color: "indigo", Icon: "🧠", AudioURL: "https://www.soundjay.com/misc/sounds/binaural-1.wav"},
	{ID: "8", Name: "Night Crickets", Category: "Sleep", Description: "Gentle cricket sounds for better sleep", Color: "slate", Icon: "🦗", AudioURL: "https://www.soundjay.com/misc/sounds/crickets-1.wav"},
}

// VideoCategories lists the video filters in display order
func VideoCategories() []string {
	return []string{AllCategories, "breathing", "meditation", "stretching", "mindfulness"}
}

// SoundCategories lists the sound filters in display order
func SoundCategories() []string {
	return []string{AllCategories, "Nature", "Focus", "Meditation", "Comfort", "Sleep"}
}

// Videos returns the videos in category, or all of them for "" and "all".
// Category matching ignores case.
func Videos(category string) []models.WellnessVideo {
	out := make([]models.WellnessVideo, 0, len(videos))
	for _, v := range videos {
		if matches(category, v.Category) {
			out = append(out, v)
		}
	}
	return out
}

// Video looks up a single video by id
func Video(id string) (models.WellnessVideo, bool) {
	for _, v := range videos {
		if v.ID == id {
			return v, true
		}
	}
	return models.WellnessVideo{}, false
}

// Sounds returns the sound tracks in category
func Sounds(category string) []models.SoundTrack {
	out := make([]models.SoundTrack, 0, len(sounds))
	for _, s := range sounds {
		if matches(category, s.Category) {
			out = append(out, s)
		}
	}
	return out
}

func matches(filter, category string) bool {
	return filter == "" || strings.EqualFold(filter, AllCategories) || strings.EqualFold(filter, category)
}
