// Package llm provides a minimal provider-agnostic client for chat-style
// language models, with adapters for OpenAI and Anthropic built on the
// official SDKs. The evaluation core depends only on the Client interface;
// provider selection happens once at construction via a "provider:model"
// spec string.
package llm

import "context"

// GenerateRequest is a single text-generation call.
type GenerateRequest struct {
	// Prompt is the user-turn content.
	Prompt string

	// SystemPrompt is the optional system instruction.
	SystemPrompt string

	// Temperature is the sampling temperature in [0,1].
	Temperature float64

	// MaxTokens bounds the generated output length.
	MaxTokens int
}

// Client generates text from a single model. Implementations wrap one
// provider SDK and surface failures as *ProviderError.
type Client interface {
	// Generate sends one prompt and returns the model's text response.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// ModelName returns the provider-visible model identifier.
	ModelName() string
}
