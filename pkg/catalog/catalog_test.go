package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideos(t *testing.T) {
	assert.Len(t, Videos(""), 6)
	assert.Len(t, Videos("all"), 6)
	assert.Len(t, Videos("Breathing"), 2)
	assert.Len(t, Videos("stretching"), 2)
	assert.Empty(t, Videos("yoga"))
}

func TestVideo(t *testing.T) {
	v, ok := Video("2")
	require.True(t, ok)
	assert.Equal(t, "Mindful Body Scan Meditation", v.Title)
	assert.Equal(t, 900, v.Duration)

	_, ok = Video("99")
	assert.False(t, ok)
}

func TestSounds(t *testing.T) {
	assert.Len(t, Sounds("All"), 8)
	assert.Len(t, Sounds("nature"), 3)
	assert.Len(t, Sounds("Sleep"), 1)
}

func TestCategoriesCoverCatalog(t *testing.T) {
	total := 0
	for _, c := range VideoCategories()[1:] {
		total += len(Videos(c))
	}
	assert.Equal(t, len(videos), total)

	total = 0
	for _, c := range SoundCategories()[1:] {
		total += len(Sounds(c))
	}
	assert.Equal(t, len(sounds), total)
}

func TestSearchFeatures(t *testing.T) {
	got := SearchFeatures("  JOUR ")
	require.Len(t, got, 1)
	assert.Equal(t, "/journal", got[0].Path)

	assert.Len(t, SearchFeatures("o"), 5)
	assert.Empty(t, SearchFeatures(""))
	assert.NotNil(t, SearchFeatures("zzz"))
	assert.Len(t, Features(), 6)
}
