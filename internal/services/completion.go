package services

import "context"

// CompletionService is the seam to the external generation service: a fully
// formed instructional prompt goes in, the model's raw text comes back.
// Latency, retries and availability are the provider's problem; callers
// treat every error as "no usable response" and fall back to defaults.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string      // Provider name (e.g., "openai")
	ModelName() string // Specific model used
}
