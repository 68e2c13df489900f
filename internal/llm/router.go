package llm

import (
	"fmt"
	"strings"
)

// ParseModelSpec splits a "provider:model" spec string. A bare model name
// without a provider prefix defaults to OpenAI.
//
// Examples: "openai:gpt-4o", "anthropic:claude-sonnet-4-5", "gpt-4o".
func ParseModelSpec(spec string) (provider, model string, err error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return "", "", fmt.Errorf("%w: empty model spec", ErrUnknownProvider)
	}

	provider = providerOpenAI
	model = spec
	if idx := strings.Index(spec, ":"); idx >= 0 {
		provider = strings.ToLower(spec[:idx])
		model = spec[idx+1:]
	}
	if model == "" {
		return "", "", fmt.Errorf("%w: spec %q has no model name", ErrUnknownProvider, spec)
	}

	switch provider {
	case providerOpenAI, providerAnthropic:
		return provider, model, nil
	default:
		return "", "", fmt.Errorf("%w: %q (supported: %s, %s)",
			ErrUnknownProvider, provider, providerOpenAI, providerAnthropic)
	}
}

// New constructs a Client from a "provider:model" spec string.
// Unsupported providers and missing credentials fail here, at construction.
func New(cfg Config, spec string) (Client, error) {
	provider, model, err := ParseModelSpec(spec)
	if err != nil {
		return nil, err
	}

	switch provider {
	case providerOpenAI:
		return NewOpenAIClient(cfg, model)
	case providerAnthropic:
		return NewAnthropicClient(cfg, model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}
