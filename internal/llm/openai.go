package llm

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
)

const providerOpenAI = "openai"

// OpenAIClient wraps the official OpenAI SDK behind the Client interface.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient builds a client for one OpenAI model.
// Requires cfg.OpenAIAPIKey; cfg.OpenAIBaseURL optionally redirects to a
// compatible endpoint.
func NewOpenAIClient(cfg Config, model string) (*OpenAIClient, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingAPIKey)
	}

	opts := []openaiopt.RequestOption{
		openaiopt.WithAPIKey(cfg.OpenAIAPIKey),
		openaiopt.WithRequestTimeout(cfg.RequestTimeout),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, openaiopt.WithBaseURL(cfg.OpenAIBaseURL))
	}

	return &OpenAIClient{client: openai.NewClient(opts...), model: model}, nil
}

// ModelName implements Client.
func (c *OpenAIClient) ModelName() string { return c.model }

// Generate implements Client via the chat completions API.
func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		// MaxTokens is deprecated for o-series models; use MaxCompletionTokens.
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", newProviderError(providerOpenAI, c.model, err)
	}
	if len(completion.Choices) == 0 {
		return "", newProviderError(providerOpenAI, c.model, fmt.Errorf("empty choices in response"))
	}

	return completion.Choices[0].Message.Content, nil
}
