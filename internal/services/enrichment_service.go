package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"tagmill/internal/models"
	"tagmill/internal/sanitize"
)

const defaultTag = "General"
const defaultLanguage = "English"

// PostMetadata is the structured result of one extraction call.
type PostMetadata struct {
	LineCount int
	Language  string
	Tags      []string
}

// Fields returns the metadata as post fields, ready to merge.
func (m PostMetadata) Fields() map[string]any {
	return map[string]any{
		models.FieldLineCount: m.LineCount,
		models.FieldLanguage:  m.Language,
		models.FieldTags:      m.Tags,
	}
}

// EnrichmentService derives line_count, language and tags for a post by
// asking the generation service once per post.
type EnrichmentService struct {
	completion CompletionService
}

func NewEnrichmentService(completion CompletionService) *EnrichmentService {
	return &EnrichmentService{completion: completion}
}

// Enrich sanitizes the post text in place, then merges extracted metadata
// onto a copy of the post. Any service, parse or validation failure is
// recovered locally with deterministic defaults; Enrich never drops a post
// and never returns an error.
func (s *EnrichmentService) Enrich(ctx context.Context, post models.Post) models.Post {
	text := sanitize.Clean(post.Text())
	post.SetText(text)

	meta, err := s.extractMetadata(ctx, text)
	if err != nil {
		log.Warnf("Metadata extraction failed, applying defaults: %v", err)
		meta = defaultMetadata(text)
	}
	return post.Merge(meta.Fields())
}

func (s *EnrichmentService) extractMetadata(ctx context.Context, text string) (PostMetadata, error) {
	prompt := renderPrompt(extractPromptTemplate, "{post}", text)

	raw, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		return PostMetadata{}, err
	}
	log.Debugf("Extraction response: %s", raw)

	return parseMetadataResponse(raw)
}

// parseMetadataResponse validates the model's answer against the extraction
// schema: a JSON object with exactly the keys line_count, language and tags.
func parseMetadataResponse(raw string) (PostMetadata, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		return PostMetadata{}, fmt.Errorf("failed to parse extraction response as JSON: %w", err)
	}

	for _, key := range []string{models.FieldLineCount, models.FieldLanguage, models.FieldTags} {
		if _, ok := parsed[key]; !ok {
			return PostMetadata{}, fmt.Errorf("missing required key %q in extraction response", key)
		}
	}

	lineCount, ok := parsed[models.FieldLineCount].(float64)
	if !ok {
		return PostMetadata{}, fmt.Errorf("line_count is not a number in extraction response")
	}
	language, ok := parsed[models.FieldLanguage].(string)
	if !ok {
		return PostMetadata{}, fmt.Errorf("language is not a string in extraction response")
	}

	return PostMetadata{
		LineCount: int(lineCount),
		Language:  language,
		Tags:      normalizeTags(parsed[models.FieldTags]),
	}, nil
}

// normalizeTags coerces the tags value into a list of strings: a list is
// taken as-is, a truthy scalar is wrapped into a one-element list, and
// anything falsy becomes the default tag.
func normalizeTags(v any) []string {
	switch tags := v.(type) {
	case []any:
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			if s, ok := t.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(t))
			}
		}
		return out
	case string:
		if tags == "" {
			return []string{defaultTag}
		}
		return []string{tags}
	case float64:
		return []string{fmt.Sprint(tags)}
	case bool:
		if !tags {
			return []string{defaultTag}
		}
		return []string{fmt.Sprint(tags)}
	default:
		return []string{defaultTag}
	}
}

// defaultMetadata is the fallback applied when extraction fails: the line
// count is computed locally and language/tags get safe defaults.
func defaultMetadata(text string) PostMetadata {
	return PostMetadata{
		LineCount: strings.Count(text, "\n") + 1,
		Language:  defaultLanguage,
		Tags:      []string{defaultTag},
	}
}
