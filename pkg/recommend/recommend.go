// Package recommend holds the fixed suggestion tables shown after a mood
// check-in or an assessment.
package recommend

import "mindwell/pkg/models"

var byMood = map[models.Mood][]string{
	models.MoodVeryHappy: {
		"Consider journaling about what made you feel great today",
		"Share your positive energy with the wellness community",
		"Try maintaining this mood with light meditation",
	},
	models.MoodHappy: {
		"Continue with breathing exercises to maintain balance",
		"Journal about your positive experiences",
		"Explore uplifting wellness content",
	},
	models.MoodNeutral: {
		"Try some light stretching or breathing exercises",
		"Consider journaling to explore your feelings",
		"Listen to calming music or nature sounds",
	},
	models.MoodSad: {
		"Practice gentle breathing exercises",
		"Consider writing in your journal",
		"Try light and sound therapy for comfort",
		"Reach out to our AI assistant for support",
	},
	models.MoodVerySad: {
		"Engage with our supportive AI chatbot",
		"Consider booking a consultation with a counselor",
		"Try guided meditation for emotional healing",
		"Write freely in your private journal",
	},
	models.MoodAngry: {
		"Try deep breathing exercises to calm down",
		"Consider physical wellness activities like stretching",
		"Write about your feelings in your journal",
		"Use our light therapy for relaxation",
	},
	models.MoodAnxious: {
		"Practice calming breathing techniques",
		"Try our guided meditation videos",
		"Use light and sound therapy for relaxation",
		"Consider chatting with our AI assistant",
	},
	models.MoodExcited: {
		"Channel your energy into journaling",
		"Try active wellness exercises",
		"Share your excitement through creative expression",
	},
}

var byTier = map[models.Tier][]string{
	models.TierLow: {
		"Great! You seem to be managing well mentally.",
		"Continue with regular wellness practices like our guided videos.",
		"Consider daily mood check-ins to maintain awareness.",
		"Keep up your current self-care routine.",
	},
	models.TierMild: {
		"You may be experiencing some mild stress or mood changes.",
		"Try our sound therapy sessions for relaxation.",
		"Regular journaling can help process your thoughts.",
		"Consider our breathing exercises for stress management.",
		"Maintain good sleep hygiene and regular exercise.",
	},
	models.TierModerate: {
		"You may be experiencing moderate stress or mood difficulties.",
		"We recommend trying our AI chatbot for additional support.",
		"Daily wellness activities like meditation could be beneficial.",
		"Consider scheduling a consultation with our counselors.",
		"Focus on stress-reduction techniques and self-care.",
	},
	models.TierSevere: {
		"You may be experiencing significant stress or mood challenges.",
		"We strongly recommend booking a consultation with a licensed counselor.",
		"Try our AI support chatbot for immediate assistance.",
		"Use our crisis resources if you need immediate help.",
		"Consider reaching out to trusted friends, family, or professionals.",
	},
}

// ForMood returns the suggestions for mood in display order. Unknown moods
// get an empty list. The result is a copy and may be modified freely.
func ForMood(mood models.Mood) []string {
	return clone(byMood[mood])
}

// ForTier returns the suggestions for an assessment tier
func ForTier(tier models.Tier) []string {
	return clone(byTier[tier])
}

func clone(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
