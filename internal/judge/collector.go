package judge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/llm"
)

// Scoring call parameters: deterministic decoding, bounded output.
const (
	scoringTemperature = 0.0
	scoringMaxTokens   = 1000
)

// Log/rationale truncation limits for raw judge output.
const (
	logSnippetLen       = 200
	rationaleSnippetLen = 500
)

// Collector obtains one validated JudgeVote per (scenario, dimension, judge)
// triple. Malformed judge output never produces an error: the fallback chain
// (digit scan, then default score 3) guarantees a usable vote. Only provider
// failures from the underlying client propagate.
type Collector struct {
	logger *slog.Logger
}

// NewCollector creates a vote collector. A nil logger falls back to
// slog.Default().
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{logger: logger}
}

// GetVote sends one scoring prompt to the judge and parses the response into
// a vote. The request runs at temperature 0 with a bounded output length.
func (c *Collector) GetVote(
	ctx context.Context,
	judgeClient llm.Client,
	sc domain.Scenario,
	response string,
	dim domain.RubricDimension,
) (domain.JudgeVote, error) {
	raw, err := judgeClient.Generate(ctx, llm.GenerateRequest{
		Prompt:       BuildPrompt(sc, response, dim),
		SystemPrompt: systemPrompt,
		Temperature:  scoringTemperature,
		MaxTokens:    scoringMaxTokens,
	})
	if err != nil {
		return domain.JudgeVote{}, fmt.Errorf("collecting vote from %s for %q: %w",
			judgeClient.ModelName(), dim.Name, err)
	}

	score, reasoning := c.parseWithFallback(raw, judgeClient.ModelName(), dim.Name)

	return domain.NewJudgeVote(judgeClient.ModelName(), score, reasoning)
}

// parseWithFallback applies the strict parser and, on failure, the recovery
// chain: log a warning with the raw response, scan for a standalone digit in
// [0,5] with a synthetic rationale, and finally default to score 3 with a
// rationale explaining the parse failure.
func (c *Collector) parseWithFallback(raw, judgeModel, dimension string) (int, string) {
	score, reasoning, err := parseVerdict(raw)
	if err == nil {
		return score, reasoning
	}

	c.logger.Warn("failed to parse judge response, falling back",
		"judge_model", judgeModel,
		"dimension", dimension,
		"error", err,
		"response", truncate(raw, logSnippetLen))

	if salvaged, ok := salvageScore(raw); ok {
		return salvaged, fmt.Sprintf("Fallback parsing. Original response: %s",
			truncate(raw, rationaleSnippetLen))
	}

	return fallbackScore, fmt.Sprintf("Failed to parse judge response. Raw: %s",
		truncate(raw, rationaleSnippetLen))
}
