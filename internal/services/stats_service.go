package services

import (
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"tagmill/internal/models"
)

// BatchStats summarizes an enriched batch for reporting.
type BatchStats struct {
	PostCount      int
	Languages      map[string]int
	TagCounts      map[string]int
	TotalLines     int
	TotalSentences int
}

// AvgLines returns the mean line count per post.
func (b BatchStats) AvgLines() float64 {
	if b.PostCount == 0 {
		return 0
	}
	return float64(b.TotalLines) / float64(b.PostCount)
}

// AvgSentences returns the mean sentence count per post.
func (b BatchStats) AvgSentences() float64 {
	if b.PostCount == 0 {
		return 0
	}
	return float64(b.TotalSentences) / float64(b.PostCount)
}

// StatsService computes read-only statistics over a processed batch.
type StatsService struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewStatsService() (*StatsService, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &StatsService{tokenizer: tokenizer}, nil
}

// Summarize tallies language distribution, tag frequency and text size
// metrics across posts.
func (s *StatsService) Summarize(posts []models.Post) BatchStats {
	stats := BatchStats{
		PostCount: len(posts),
		Languages: make(map[string]int),
		TagCounts: make(map[string]int),
	}
	for _, post := range posts {
		if lang, ok := post[models.FieldLanguage].(string); ok {
			stats.Languages[lang]++
		}
		if tags, ok := post.Tags(); ok {
			for _, tag := range tags {
				stats.TagCounts[tag]++
			}
		}
		stats.TotalLines += lineCountOf(post)
		stats.TotalSentences += len(s.tokenizer.Tokenize(post.Text()))
	}
	return stats
}

// lineCountOf reads the enriched line_count field, which is an int when set
// in-process and a float64 after a JSON round trip.
func lineCountOf(post models.Post) int {
	switch v := post[models.FieldLineCount].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
