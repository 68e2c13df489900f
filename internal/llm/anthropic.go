package llm

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
)

const providerAnthropic = "anthropic"

// AnthropicClient wraps the official Anthropic SDK behind the Client interface.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

// NewAnthropicClient builds a client for one Anthropic model.
// Requires cfg.AnthropicAPIKey; cfg.AnthropicBaseURL optionally redirects to
// a compatible endpoint.
func NewAnthropicClient(cfg Config, model string) (*AnthropicClient, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrMissingAPIKey)
	}

	opts := []anthropicopt.RequestOption{
		anthropicopt.WithAPIKey(cfg.AnthropicAPIKey),
		anthropicopt.WithRequestTimeout(cfg.RequestTimeout),
	}
	if cfg.AnthropicBaseURL != "" {
		opts = append(opts, anthropicopt.WithBaseURL(cfg.AnthropicBaseURL))
	}

	return &AnthropicClient{client: anthropic.NewClient(opts...), model: model}, nil
}

// ModelName implements Client.
func (c *AnthropicClient) ModelName() string { return c.model }

// Generate implements Client via the messages API. The system prompt travels
// in the dedicated System field per Anthropic's message format.
func (c *AnthropicClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(req.Prompt),
			},
		}},
	}
	params.Temperature = anthropic.Float(req.Temperature)
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", newProviderError(providerAnthropic, c.model, err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", newProviderError(providerAnthropic, c.model, fmt.Errorf("no text content in response"))
	}

	return text.String(), nil
}
