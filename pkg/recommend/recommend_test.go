package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell/pkg/models"
)

func TestForMoodCoversEveryMood(t *testing.T) {
	for _, m := range models.AllMoods() {
		assert.NotEmpty(t, ForMood(m), m)
	}
}

func TestForMoodAnxious(t *testing.T) {
	got := ForMood(models.MoodAnxious)
	require.Len(t, got, 4)
	assert.Equal(t, "Practice calming breathing techniques", got[0])
}

func TestForMoodUnknownIsEmpty(t *testing.T) {
	got := ForMood("furious")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestForMoodReturnsCopy(t *testing.T) {
	got := ForMood(models.MoodHappy)
	got[0] = "mutated"
	assert.Equal(t, "Continue with breathing exercises to maintain balance", ForMood(models.MoodHappy)[0])
}

func TestForTier(t *testing.T) {
	for _, tier := range []models.Tier{models.TierLow, models.TierMild, models.TierModerate, models.TierSevere} {
		assert.NotEmpty(t, ForTier(tier), tier)
	}
	assert.Empty(t, ForTier("extreme"))
}
