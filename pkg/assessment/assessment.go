// Package assessment scores the wellness self-check questionnaire.
package assessment

import (
	"time"

	"github.com/google/uuid"

	"mindwell/pkg/errors"
	"mindwell/pkg/models"
	"mindwell/pkg/recommend"
)

// MaxAnswer is the value of the most severe option on every question
const MaxAnswer = 3

// Option is one selectable answer to a question
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Question is a single questionnaire item
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

var frequency = []Option{
	{"Not at all", 0},
	{"Several days", 1},
	{"More than half the days", 2},
	{"Nearly every day", 3},
}

var questions = []Question{
	{ID: "q1", Text: "Over the past two weeks, how often have you felt down, depressed, or hopeless?", Options: frequency},
	{ID: "q2", Text: "How often have you had little interest or pleasure in doing things?", Options: frequency},
	{ID: "q3", Text: "How often have you felt nervous, anxious, or on edge?", Options: frequency},
	{ID: "q4", Text: "How well have you been able to manage stress in your daily life?", Options: []Option{
		{"Very well", 0},
		{"Fairly well", 1},
		{"Not very well", 2},
		{"Not well at all", 3},
	}},
	{ID: "q5", Text: "How satisfied are you with your current sleep quality?", Options: []Option{
		{"Very satisfied", 0},
		{"Somewhat satisfied", 1},
		{"Not very satisfied", 2},
		{"Not satisfied at all", 3},
	}},
}

// Questions returns the questionnaire in presentation order
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Score maps answers to a percentage: 100 * sum / (3 * n). Answers outside
// 0..3 are clamped so the result always lies in [0, 100]. An empty sheet
// scores 0.
func Score(answers []int) float64 {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		switch {
		case a < 0:
			a = 0
		case a > MaxAnswer:
			a = MaxAnswer
		}
		sum += a
	}
	return float64(sum) * 100 / float64(MaxAnswer*len(answers))
}

// TierFor buckets a score. Upper edges are inclusive: 25 is low, 50 mild,
// 75 moderate.
func TierFor(score float64) models.Tier {
	switch {
	case score <= 25:
		return models.TierLow
	case score <= 50:
		return models.TierMild
	case score <= 75:
		return models.TierModerate
	default:
		return models.TierSevere
	}
}

// Evaluate validates a full answer sheet and builds the completed
// assessment for userID.
func Evaluate(userID string, answers []int, now time.Time) (*models.Assessment, error) {
	if r := errors.NewValidator().ValidateAnswers(answers, len(questions)); !r.IsValid {
		return nil, r.GetFirstError()
	}

	responses := make([]models.AssessmentResponse, len(answers))
	for i, a := range answers {
		responses[i] = models.AssessmentResponse{QuestionID: questions[i].ID, Answer: a}
	}

	score := Score(answers)
	tier := TierFor(score)
	return &models.Assessment{
		ID:              uuid.NewString(),
		UserID:          userID,
		Score:           score,
		Tier:            tier,
		Responses:       responses,
		Recommendations: recommend.ForTier(tier),
		CompletedAt:     now,
	}, nil
}

// ParseResponses turns question-keyed responses into an ordered answer
// sheet. Unknown or duplicate question ids are rejected.
func ParseResponses(responses []models.AssessmentResponse) ([]int, error) {
	answers := make([]int, len(questions))
	seen := make(map[string]bool, len(responses))
	for _, r := range responses {
		idx := indexOf(r.QuestionID)
		if idx < 0 || seen[r.QuestionID] {
			return nil, errors.ErrIncompleteAssessment.WithContext("question_id", r.QuestionID)
		}
		seen[r.QuestionID] = true
		answers[idx] = r.Answer
	}
	if len(seen) != len(questions) {
		return nil, errors.ErrIncompleteAssessment.
			WithContext("expected", len(questions)).
			WithContext("got", len(seen))
	}
	return answers, nil
}

func indexOf(id string) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
