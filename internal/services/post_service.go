package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tagmill/internal/models"
)

// PostService runs the full batch pipeline: load posts, enrich each one in
// sequence, unify the tag vocabulary, and optionally persist the result.
type PostService struct {
	enricher *EnrichmentService
	unifier  *TagUnificationService
}

func NewPostService(enricher *EnrichmentService, unifier *TagUnificationService) *PostService {
	return &PostService{enricher: enricher, unifier: unifier}
}

// ProcessPosts processes the posts in rawPath and, when processedPath is
// non-empty, writes the enriched batch there. File-level failures (missing
// input, malformed top-level JSON, write errors) are logged and yield an
// empty batch; no per-post failure ever aborts the run.
func (s *PostService) ProcessPosts(ctx context.Context, rawPath, processedPath string) []models.Post {
	runLog := log.WithField("run_id", uuid.New().String())

	posts, err := LoadPosts(rawPath)
	if err != nil {
		runLog.Errorf("Failed to load posts from %s: %v", rawPath, err)
		return []models.Post{}
	}

	enriched := make([]models.Post, 0, len(posts))
	for i, post := range posts {
		runLog.Infof("Processing post %d/%d...", i+1, len(posts))
		enriched = append(enriched, s.enricher.Enrich(ctx, post))
	}

	runLog.Info("Unifying tags...")
	_, enriched = s.unifier.Unify(ctx, enriched)

	if processedPath != "" {
		if err := SavePosts(processedPath, enriched); err != nil {
			runLog.Errorf("Failed to save processed posts to %s: %v", processedPath, err)
		} else {
			runLog.Infof("Processed %d posts saved to %s", len(enriched), processedPath)
		}
	}
	return enriched
}

// LoadPosts reads a JSON array of posts from path.
func LoadPosts(path string) ([]models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read posts file: %w", err)
	}
	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return posts, nil
}

// SavePosts writes posts to path as a pretty-printed UTF-8 JSON array.
// HTML escaping is off so non-ASCII text and characters like & stay literal.
func SavePosts(path string, posts []models.Post) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(posts); err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	return nil
}
