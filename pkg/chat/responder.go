// Package chat simulates the support assistant with canned replies.
package chat

import "strings"

type rule struct {
	keywords []string
	reply    string
}

// Crisis language is checked first so it always wins over mood keywords
// that may appear in the same message.
var rules = []rule{
	{
		keywords: []string{"hurt myself", "suicide", "end it all", "don't want to live"},
		reply: "I'm very concerned about what you've shared, and I want you to know that you're not alone. Your life has value, and there are people who want to help.\n\n" +
			"🚨 IMMEDIATE RESOURCES:\n• National Crisis Hotline: 988\n• Emergency Services: 911\n• MMDC Counseling Services: [Contact Info]\n\n" +
			"Please reach out to one of these resources right away. You deserve support and care. Is there someone you trust who you can contact right now?",
	},
	{
		keywords: []string{"sad", "depressed", "down"},
		reply: "I hear that you're feeling sad, and I want you to know that your feelings are valid. It's okay to have difficult days. Here are some things that might help:\n\n" +
			"• Try some gentle breathing exercises\n• Consider writing in your journal about what you're experiencing\n• Listen to calming music or nature sounds\n• Remember that this feeling is temporary\n\n" +
			"Would you like me to guide you through a breathing exercise, or would you prefer to talk about what's making you feel this way?",
	},
	{
		keywords: []string{"anxious", "anxiety", "worried", "stress"},
		reply: "Anxiety can feel overwhelming, but there are effective ways to manage it. Let's work through this together:\n\n" +
			"• Try the 4-7-8 breathing technique: Inhale for 4, hold for 7, exhale for 8\n• Ground yourself using the 5-4-3-2-1 technique: Name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste\n• Consider our guided meditation videos\n• Remember: anxiety is temporary and manageable\n\n" +
			"What specific situation is causing you anxiety? Sometimes talking through it can help.",
	},
	{
		keywords: []string{"angry", "frustrated", "mad"},
		reply: "Anger is a natural emotion, and it's important to acknowledge it. Here are some healthy ways to process these feelings:\n\n" +
			"• Take slow, deep breaths to calm your nervous system\n• Try physical movement like stretching or walking\n• Write about your feelings in your journal\n• Use our sound therapy for relaxation\n\n" +
			"What's triggering these feelings? Sometimes understanding the root cause can help us address it more effectively.",
	},
	{
		keywords: []string{"happy", "good", "great", "excited"},
		reply: "That's wonderful to hear! I'm so glad you're feeling positive today. It's important to acknowledge and celebrate these good moments:\n\n" +
			"• Consider journaling about what's making you feel good\n• Share your positive energy with others\n• Use this energy for self-care activities\n• Remember this feeling for challenging days\n\n" +
			"What's contributing to your positive mood today?",
	},
	{
		keywords: []string{"study", "exam", "school", "academic"},
		reply: "Academic stress is very common among students, especially in demanding programs like yours. Here are some strategies that can help:\n\n" +
			"• Break large tasks into smaller, manageable chunks\n• Use the Pomodoro Technique: 25 minutes focused study, 5-minute break\n• Practice mindfulness during study breaks\n• Maintain a regular sleep schedule\n• Don't forget to take care of your basic needs\n\n" +
			"Remember, your worth isn't determined by your grades. What specific academic challenge are you facing?",
	},
	{
		keywords: []string{"sleep", "tired", "insomnia"},
		reply: "Sleep is crucial for mental health and academic performance. Here are some tips for better sleep:\n\n" +
			"• Establish a consistent bedtime routine\n• Avoid screens 1 hour before bed\n• Try our guided sleep meditations\n• Keep your room cool and dark\n• Avoid caffeine late in the day\n• Practice relaxation techniques before bed\n\n" +
			"How long have you been experiencing sleep difficulties? Are there specific thoughts keeping you awake?",
	},
	{
		keywords: []string{"help", "support"},
		reply: "I'm here to support you in whatever way I can. Here are some ways I can help:\n\n" +
			"• Listen to your concerns without judgment\n• Provide coping strategies for stress and difficult emotions\n• Guide you through relaxation techniques\n• Help you explore your feelings\n• Connect you with additional resources\n\n" +
			"What kind of support would be most helpful for you right now?",
	},
}

const defaultReply = "Thank you for sharing that with me. I'm here to listen and support you. Can you tell me more about how you're feeling or what's on your mind? Sometimes talking through our thoughts and feelings can help us process them better.\n\n" +
	"If you're looking for specific support, I can help with:\n• Stress management techniques\n• Coping strategies for difficult emotions\n• Relaxation and mindfulness exercises\n• Academic stress support\n\n" +
	"What would be most helpful for you today?"

var quickPrompts = []string{
	"I'm feeling stressed about my studies",
	"I'm having trouble sleeping",
	"I feel anxious about upcoming exams",
	"I'm feeling overwhelmed",
	"I need help managing my emotions",
	"I'm having a good day today",
}

// Respond picks the canned reply for message. Matching is a
// case-insensitive substring search; the first matching rule wins.
func Respond(message string) string {
	text := strings.ToLower(strings.ReplaceAll(message, "’", "'"))
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(text, k) {
				return r.reply
			}
		}
	}
	return defaultReply
}

// IsCrisis reports whether message contains crisis language
func IsCrisis(message string) bool {
	return Respond(message) == rules[0].reply
}

// QuickPrompts returns suggested opening messages
func QuickPrompts() []string {
	out := make([]string, len(quickPrompts))
	copy(out, quickPrompts)
	return out
}

// Welcome returns the greeting that opens every conversation
func Welcome(firstName string) string {
	if firstName == "" {
		firstName = "there"
	}
	return "Hello " + firstName + "! I'm your AI mental health support assistant. I'm here to listen, provide coping strategies, and help you navigate your wellness journey. How are you feeling today?"
}
