package models

import "time"

// Tier buckets an assessment score
type Tier string

const (
	TierLow      Tier = "low"
	TierMild     Tier = "mild"
	TierModerate Tier = "moderate"
	TierSevere   Tier = "severe"
)

// Valid reports whether t is a known tier
func (t Tier) Valid() bool {
	switch t {
	case TierLow, TierMild, TierModerate, TierSevere:
		return true
	}
	return false
}

// AssessmentResponse is the answer to one question, 0 (best) to 3 (worst)
type AssessmentResponse struct {
	QuestionID string `json:"question_id"`
	Answer     int    `json:"answer"`
}

// Assessment is the result of one completed questionnaire run
type Assessment struct {
	ID              string               `json:"id"`
	UserID          string               `json:"user_id"`
	Score           float64              `json:"score"`
	Tier            Tier                 `json:"tier"`
	Responses       []AssessmentResponse `json:"responses"`
	Recommendations []string             `json:"recommendations"`
	CompletedAt     time.Time            `json:"completed_at"`
}
