package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagmill/internal/models"
)

func TestStatsService_Summarize(t *testing.T) {
	svc, err := NewStatsService()
	require.NoError(t, err)

	posts := []models.Post{
		{"text": "One sentence here. And another one!", "line_count": 2.0, "language": "English", "tags": []any{"Career"}},
		{"text": "Ek hi baat.", "line_count": 1.0, "language": "Hinglish", "tags": []any{"Career", "Motivation"}},
	}

	stats := svc.Summarize(posts)

	assert.Equal(t, 2, stats.PostCount)
	assert.Equal(t, map[string]int{"English": 1, "Hinglish": 1}, stats.Languages)
	assert.Equal(t, map[string]int{"Career": 2, "Motivation": 1}, stats.TagCounts)
	assert.InDelta(t, 1.5, stats.AvgLines(), 0.001)
	assert.InDelta(t, 1.5, stats.AvgSentences(), 0.001)
}

func TestStatsService_EmptyBatch(t *testing.T) {
	svc, err := NewStatsService()
	require.NoError(t, err)

	stats := svc.Summarize(nil)

	assert.Equal(t, 0, stats.PostCount)
	assert.Zero(t, stats.AvgLines())
	assert.Zero(t, stats.AvgSentences())
}
