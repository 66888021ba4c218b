package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"tagmill/internal/models"
)

// TagUnificationService collapses near-duplicate tag labels across a batch
// into canonical forms using a single generation-service call.
type TagUnificationService struct {
	completion CompletionService
}

func NewTagUnificationService(completion CompletionService) *TagUnificationService {
	return &TagUnificationService{completion: completion}
}

// Unify collects the distinct tags across all posts, asks the service for a
// merge mapping, and rewrites every post's tag set through it. Unification
// is best effort: on any service or parse failure the identity mapping is
// used and no tag changes. Posts are rewritten in place and returned.
func (s *TagUnificationService) Unify(ctx context.Context, posts []models.Post) (map[string]string, []models.Post) {
	uniqueTags := collectDistinctTags(posts)
	if len(uniqueTags) == 0 {
		return map[string]string{}, posts
	}

	mapping := s.requestMapping(ctx, uniqueTags)

	for _, post := range posts {
		tags, ok := post.Tags()
		if !ok {
			continue
		}
		canonical := make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			if unified, found := mapping[tag]; found {
				canonical[unified] = struct{}{}
			} else {
				canonical[tag] = struct{}{}
			}
		}
		rewritten := make([]string, 0, len(canonical))
		for tag := range canonical {
			rewritten = append(rewritten, tag)
		}
		post.SetTags(rewritten)
	}
	return mapping, posts
}

// requestMapping asks the generation service for the original-to-unified
// tag mapping, falling back to the identity mapping on any failure.
func (s *TagUnificationService) requestMapping(ctx context.Context, uniqueTags []string) map[string]string {
	tagList := strings.Join(uniqueTags, ",")
	log.Infof("Found %d unique tags: %s", len(uniqueTags), tagList)

	prompt := renderPrompt(unifyPromptTemplate, "{tags}", tagList)

	raw, err := s.completion.Complete(ctx, prompt)
	if err != nil {
		log.Warnf("Tag unification request failed, using identity mapping: %v", err)
		return identityMapping(uniqueTags)
	}

	var mapping map[string]string
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &mapping); err != nil {
		log.Warnf("Tag unification parsing error, using identity mapping: %v", err)
		return identityMapping(uniqueTags)
	}

	unified := make(map[string]struct{}, len(mapping))
	for _, tag := range mapping {
		unified[tag] = struct{}{}
	}
	log.Infof("Unified %d tags into %d categories", len(uniqueTags), len(unified))
	return mapping
}

// collectDistinctTags returns the sorted set of tags used anywhere in the
// batch. Posts without a usable tag list are ignored. Sorting keeps the
// unification prompt stable across runs.
func collectDistinctTags(posts []models.Post) []string {
	seen := make(map[string]struct{})
	for _, post := range posts {
		tags, ok := post.Tags()
		if !ok {
			continue
		}
		for _, tag := range tags {
			seen[tag] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func identityMapping(tags []string) map[string]string {
	mapping := make(map[string]string, len(tags))
	for _, tag := range tags {
		mapping[tag] = tag
	}
	return mapping
}
