package services

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// OpenAICompletionService implements CompletionService using the OpenAI
// chat completion API (or any OpenAI-compatible endpoint via base URL).
type OpenAICompletionService struct {
	client *openai.Client
	model  string
}

// NewOpenAICompletionService creates a new OpenAI-backed completion service.
// With no API key available the service is constructed disabled; every
// Complete call then errors and the pipeline runs on defaults only.
func NewOpenAICompletionService(apiKey, model, baseURL string) *OpenAICompletionService {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. Completion service will be disabled.")
		return &OpenAICompletionService{client: nil, model: model}
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	log.Infof("OpenAI completion service initialized with model %s", model)

	return &OpenAICompletionService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Name returns the provider name.
func (s *OpenAICompletionService) Name() string { return "openai" }

// ModelName returns the specific model identifier.
func (s *OpenAICompletionService) ModelName() string { return s.model }

// Complete submits prompt as a single user message and returns the first
// choice's content verbatim.
func (s *OpenAICompletionService) Complete(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI completion service is not initialized (missing API key)")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ CompletionService = (*OpenAICompletionService)(nil)
