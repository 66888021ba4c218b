package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagmill/internal/models"
)

func TestUnify_MergeScenario(t *testing.T) {
	mock := &mockCompletionService{
		response: `{"Jobseekers": "Job Search", "Job Hunting": "Job Search", "Motivation": "Motivation"}`,
	}
	unifier := NewTagUnificationService(mock)

	posts := []models.Post{
		{"tags": []string{"Jobseekers"}},
		{"tags": []string{"Job Hunting"}},
		{"tags": []string{"Motivation"}},
	}

	mapping, unified := unifier.Unify(context.Background(), posts)

	assert.Equal(t, "Job Search", mapping["Jobseekers"])

	expected := [][]string{{"Job Search"}, {"Job Search"}, {"Motivation"}}
	for i, post := range unified {
		tags, ok := post.Tags()
		require.True(t, ok)
		assert.Equal(t, expected[i], tags, "post %d tags mismatch", i)
	}
}

func TestUnify_PromptListsSortedDistinctTags(t *testing.T) {
	mock := &mockCompletionService{response: `{}`}
	unifier := NewTagUnificationService(mock)

	posts := []models.Post{
		{"tags": []string{"Motivation", "Jobseekers"}},
		{"tags": []string{"Job Hunting", "Motivation"}},
	}

	unifier.Unify(context.Background(), posts)

	require.Len(t, mock.prompts, 1)
	assert.Contains(t, mock.prompts[0], "Job Hunting,Jobseekers,Motivation",
		"distinct tags must appear comma-joined in lexicographic order")
}

func TestUnify_IdentityFallbackOnMalformedResponse(t *testing.T) {
	mock := &mockCompletionService{response: "not a json object at all"}
	unifier := NewTagUnificationService(mock)

	posts := []models.Post{
		{"tags": []string{"Jobseekers"}},
		{"tags": []string{"Motivation"}},
	}

	mapping, unified := unifier.Unify(context.Background(), posts)

	assert.Equal(t, map[string]string{"Jobseekers": "Jobseekers", "Motivation": "Motivation"}, mapping)
	tags, _ := unified[0].Tags()
	assert.Equal(t, []string{"Jobseekers"}, tags, "no tag set may change under the identity mapping")
}

func TestUnify_IdentityFallbackOnServiceError(t *testing.T) {
	mock := &mockCompletionService{err: errors.New("service unavailable")}
	unifier := NewTagUnificationService(mock)

	posts := []models.Post{{"tags": []string{"Career"}}}

	mapping, unified := unifier.Unify(context.Background(), posts)

	assert.Equal(t, map[string]string{"Career": "Career"}, mapping)
	tags, _ := unified[0].Tags()
	assert.Equal(t, []string{"Career"}, tags)
}

func TestUnify_EmptyTagSetShortCircuit(t *testing.T) {
	mock := &mockCompletionService{response: `{"anything": "whatever"}`}
	unifier := NewTagUnificationService(mock)

	posts := []models.Post{
		{"text": "no tags here"},
		{"text": "tags is not a list", "tags": "General"},
	}

	mapping, unified := unifier.Unify(context.Background(), posts)

	assert.Empty(t, mapping)
	assert.Empty(t, mock.prompts, "no service call may happen for an empty tag set")
	assert.Equal(t, "General", unified[1]["tags"], "unusable tag fields stay untouched")
}

func TestUnify_UnmappedTagsPassThrough(t *testing.T) {
	mock := &mockCompletionService{response: `{"Jobseekers": "Job Search"}`}
	unifier := NewTagUnificationService(mock)

	posts := []models.Post{{"tags": []string{"Jobseekers", "Networking"}}}

	_, unified := unifier.Unify(context.Background(), posts)

	tags, ok := unified[0].Tags()
	require.True(t, ok)
	assert.Equal(t, []string{"Job Search", "Networking"}, tags)
}

func TestUnify_DeduplicatesMergedTags(t *testing.T) {
	mock := &mockCompletionService{
		response: `{"Jobseekers": "Job Search", "Job Hunting": "Job Search"}`,
	}
	unifier := NewTagUnificationService(mock)

	posts := []models.Post{{"tags": []string{"Jobseekers", "Job Hunting"}}}

	_, unified := unifier.Unify(context.Background(), posts)

	tags, ok := unified[0].Tags()
	require.True(t, ok)
	assert.Equal(t, []string{"Job Search"}, tags, "tags mapping to the same canonical label collapse to one")
}
