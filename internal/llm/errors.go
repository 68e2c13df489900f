package llm

import (
	"errors"
	"fmt"
)

// Construction-time errors.
var (
	// ErrUnknownProvider indicates a model spec naming an unsupported provider.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrMissingAPIKey indicates a provider selected without credentials.
	ErrMissingAPIKey = errors.New("missing API key")
)

// ProviderError wraps a failed remote model call. The evaluation core never
// recovers from these; they propagate to the run orchestration layer, which
// skips the affected scenario.
type ProviderError struct {
	// Provider names the backend ("openai", "anthropic").
	Provider string

	// Model is the model that was being called.
	Model string

	// Err is the underlying SDK or transport error.
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Model, e.Err)
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *ProviderError) Unwrap() error { return e.Err }

// newProviderError wraps an SDK error with provider attribution.
func newProviderError(provider, model string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Model: model, Err: err}
}
