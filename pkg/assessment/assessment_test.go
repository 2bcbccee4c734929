package assessment

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell/pkg/errors"
	"mindwell/pkg/models"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []int
		want    float64
	}{
		{"all zero", []int{0, 0, 0, 0, 0}, 0},
		{"all max", []int{3, 3, 3, 3, 3}, 100},
		{"mixed", []int{3, 2, 3, 2, 3}, 13.0 * 100 / 15},
		{"clamped", []int{9, -4, 3, 3, 3}, 80},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.answers), 1e-9)
		})
	}
}

func TestTierForBoundaries(t *testing.T) {
	assert.Equal(t, models.TierLow, TierFor(0))
	assert.Equal(t, models.TierLow, TierFor(25))
	assert.Equal(t, models.TierMild, TierFor(25.01))
	assert.Equal(t, models.TierMild, TierFor(50))
	assert.Equal(t, models.TierModerate, TierFor(50.5))
	assert.Equal(t, models.TierModerate, TierFor(75))
	assert.Equal(t, models.TierSevere, TierFor(75.01))
	assert.Equal(t, models.TierSevere, TierFor(100))
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a, err := Evaluate("user-123", []int{3, 2, 3, 2, 3}, now)
	require.NoError(t, err)

	assert.InDelta(t, 86.67, a.Score, 0.01)
	assert.Equal(t, models.TierSevere, a.Tier)
	assert.Equal(t, "user-123", a.UserID)
	assert.Equal(t, now, a.CompletedAt)
	assert.NotEmpty(t, a.ID)
	require.Len(t, a.Responses, 5)
	assert.Equal(t, "q3", a.Responses[2].QuestionID)
	assert.Equal(t, "You may be experiencing significant stress or mood challenges.", a.Recommendations[0])
}

func TestEvaluateBoundaryTiers(t *testing.T) {
	// 4/15 = 26.67 is the first score above the low band
	a, err := Evaluate("u", []int{1, 1, 1, 1, 0}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.TierMild, a.Tier)

	a, err = Evaluate("u", []int{0, 0, 0, 0, 0}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.TierLow, a.Tier)
	assert.Equal(t, "Great! You seem to be managing well mentally.", a.Recommendations[0])
}

func TestEvaluateRejectsBadSheets(t *testing.T) {
	_, err := Evaluate("u", []int{1, 2}, time.Now())
	assert.True(t, stderrors.Is(err, errors.ErrIncompleteAssessment))

	_, err = Evaluate("u", []int{1, 2, 3, 4, 0}, time.Now())
	assert.True(t, stderrors.Is(err, errors.ErrAnswerOutOfRange))
}

func TestParseResponses(t *testing.T) {
	answers, err := ParseResponses([]models.AssessmentResponse{
		{QuestionID: "q5", Answer: 3},
		{QuestionID: "q1", Answer: 1},
		{QuestionID: "q2", Answer: 0},
		{QuestionID: "q4", Answer: 2},
		{QuestionID: "q3", Answer: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 2, 3}, answers)

	_, err = ParseResponses([]models.AssessmentResponse{{QuestionID: "q1"}, {QuestionID: "q1"}})
	assert.Error(t, err)

	_, err = ParseResponses([]models.AssessmentResponse{{QuestionID: "q9"}})
	assert.Error(t, err)
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 5)
	for _, q := range qs {
		assert.Len(t, q.Options, 4, q.ID)
		assert.Equal(t, 3, q.Options[3].Value)
	}
}
