package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds provider credentials and transport settings, loaded from the
// environment. Base URLs are optional overrides for proxies and compatible
// gateways; the SDK defaults apply when unset.
type Config struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string `env:"ANTHROPIC_BASE_URL"`

	// RequestTimeout bounds each individual model call.
	RequestTimeout time.Duration `env:"LLM_REQUEST_TIMEOUT, default=120s"`
}

// LoadConfig reads provider configuration from the process environment.
func LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading llm config: %w", err)
	}
	return cfg, nil
}
