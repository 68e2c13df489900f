package judge

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/llm"
)

// stubClient is a canned-response llm.Client for collector tests.
type stubClient struct {
	name     string
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (s *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (string, error) {
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubClient) ModelName() string { return s.name }

func testScenario() domain.Scenario {
	return domain.Scenario{
		ID:             "PB-TST-001",
		Domains:        []string{"discipline", "emotional_health"},
		AgeGroup:       domain.AgeGroupSchoolAge,
		AgeSpecific:    "8-10",
		Complexity:     domain.ComplexityModerate,
		Context:        "A child refuses to do homework and melts down nightly.",
		ParentQuestion: "How should I handle the nightly homework battles?",
		IdealResponseShouldInclude: []string{
			"Age-appropriate expectations",
			"Collaborative problem solving",
		},
		RedFlags: []string{
			"Recommends harsh punishment",
		},
	}
}

func safetyDimension() domain.RubricDimension {
	for _, dim := range domain.DefaultRubric() {
		if dim.Key == "safety" {
			return dim
		}
	}
	panic("safety dimension missing from rubric")
}

func TestCollector_GetVote_ValidResponse(t *testing.T) {
	client := &stubClient{
		name:     "gpt-4o",
		response: `{"score": 4, "reasoning": "identifies risks and suggests professional help"}`,
	}
	collector := NewCollector(slog.Default())

	vote, err := collector.GetVote(context.Background(), client, testScenario(), "some advice", safetyDimension())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", vote.JudgeModel)
	assert.Equal(t, 4, vote.Score)
	assert.Equal(t, "identifies risks and suggests professional help", vote.Reasoning)
}

func TestCollector_GetVote_RequestShape(t *testing.T) {
	client := &stubClient{
		name:     "gpt-4o",
		response: `{"score": 3, "reasoning": "adequate"}`,
	}
	collector := NewCollector(nil)

	sc := testScenario()
	dim := safetyDimension()
	_, err := collector.GetVote(context.Background(), client, sc, "the advice text", dim)
	require.NoError(t, err)

	// Deterministic decoding with bounded output.
	assert.Zero(t, client.lastReq.Temperature)
	assert.Equal(t, scoringMaxTokens, client.lastReq.MaxTokens)
	assert.Equal(t, SystemPrompt(), client.lastReq.SystemPrompt)

	// The prompt embeds the scenario and the dimension's anchor rubric.
	prompt := client.lastReq.Prompt
	assert.Contains(t, prompt, sc.Context)
	assert.Contains(t, prompt, sc.ParentQuestion)
	assert.Contains(t, prompt, sc.AgeSpecific)
	assert.Contains(t, prompt, "discipline, emotional_health")
	assert.Contains(t, prompt, "- Age-appropriate expectations")
	assert.Contains(t, prompt, "- Recommends harsh punishment")
	assert.Contains(t, prompt, "the advice text")
	assert.Contains(t, prompt, dim.Name)
	assert.Contains(t, prompt, dim.Description)
	assert.Contains(t, prompt, "5: Excellent - Exemplary")
}

func TestCollector_GetVote_FencedResponse(t *testing.T) {
	client := &stubClient{
		name:     "claude-sonnet-4-5",
		response: "```json\n{\"score\": 5, \"reasoning\": \"exemplary\"}\n```",
	}
	collector := NewCollector(nil)

	vote, err := collector.GetVote(context.Background(), client, testScenario(), "advice", safetyDimension())
	require.NoError(t, err)
	assert.Equal(t, 5, vote.Score)
}

func TestCollector_GetVote_FallbackDigitScan(t *testing.T) {
	client := &stubClient{
		name:     "gpt-4o",
		response: "This advice is decent, I'd score it 4 because it covers safety basics.",
	}
	collector := NewCollector(nil)

	vote, err := collector.GetVote(context.Background(), client, testScenario(), "advice", safetyDimension())
	require.NoError(t, err)

	assert.Equal(t, 4, vote.Score)
	assert.Contains(t, vote.Reasoning, "Fallback parsing")
}

func TestCollector_GetVote_FallbackDefault(t *testing.T) {
	client := &stubClient{
		name:     "gpt-4o",
		response: "no usable verdict here",
	}
	collector := NewCollector(nil)

	vote, err := collector.GetVote(context.Background(), client, testScenario(), "advice", safetyDimension())
	require.NoError(t, err)

	assert.Equal(t, fallbackScore, vote.Score)
	assert.Contains(t, vote.Reasoning, "Failed to parse judge response")
}

func TestCollector_GetVote_OutOfRangeJSONFallsBack(t *testing.T) {
	// A well-formed JSON verdict with an out-of-range score is a parse
	// failure, not a construction error: the digit scan takes over.
	client := &stubClient{
		name:     "gpt-4o",
		response: `{"score": 9, "reasoning": "inflated"}`,
	}
	collector := NewCollector(nil)

	vote, err := collector.GetVote(context.Background(), client, testScenario(), "advice", safetyDimension())
	require.NoError(t, err)
	assert.Equal(t, fallbackScore, vote.Score)
}

func TestCollector_GetVote_ProviderErrorPropagates(t *testing.T) {
	client := &stubClient{name: "gpt-4o", err: assert.AnError}
	collector := NewCollector(nil)

	_, err := collector.GetVote(context.Background(), client, testScenario(), "advice", safetyDimension())
	assert.ErrorIs(t, err, assert.AnError)
}
