package catalog

import "strings"

// Feature is an entry point offered by the search box
type Feature struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

var features = []Feature{
	{Title: "Mood Check-in", Path: "/mood-checkin"},
	{Title: "Journal", Path: "/journal"},
	{Title: "Wellness Videos", Path: "/wellness"},
	{Title: "Sound Therapy", Path: "/therapy"},
	{Title: "AI Chat", Path: "/chat"},
	{Title: "Consultation", Path: "/consultation"},
}

// Features returns every feature in menu order
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features)
	return out
}

// SearchFeatures returns features whose title contains query, ignoring
// case. A blank query matches nothing.
func SearchFeatures(query string) []Feature {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Feature{}
	if q == "" {
		return out
	}
	for _, f := range features {
		if strings.Contains(strings.ToLower(f.Title), q) {
			out = append(out, f)
		}
	}
	return out
}
