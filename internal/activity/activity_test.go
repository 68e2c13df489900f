package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/llm"
)

func testActivities() *Activities {
	return NewActivities(llm.Config{
		OpenAIAPIKey:    "test-openai-key",
		AnthropicAPIKey: "test-anthropic-key",
	}, nil)
}

func validScenario() domain.Scenario {
	return domain.Scenario{
		ID:             "PB-EMH-001",
		Domains:        []string{"emotional_health"},
		AgeGroup:       domain.AgeGroupSchoolAge,
		AgeSpecific:    "10-12",
		Complexity:     domain.ComplexityModerate,
		Context:        "A child refuses to attend school on Mondays.",
		ParentQuestion: "How do I handle the refusal?",
	}
}

func requireNonRetryable(t *testing.T, err error) {
	t.Helper()
	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.NonRetryable())
}

func TestGenerateAdvice_InvalidScenario(t *testing.T) {
	a := testActivities()

	_, err := a.GenerateAdvice(context.Background(), GenerateAdviceInput{
		ModelSpec: "openai:gpt-4o-mini",
		Scenario:  domain.Scenario{ID: "PB-X-001"},
	})
	requireNonRetryable(t, err)
}

func TestGenerateAdvice_UnknownProvider(t *testing.T) {
	a := testActivities()

	_, err := a.GenerateAdvice(context.Background(), GenerateAdviceInput{
		ModelSpec: "cohere:command-r",
		Scenario:  validScenario(),
	})
	requireNonRetryable(t, err)
}

func TestGenerateAdvice_MissingCredentials(t *testing.T) {
	a := NewActivities(llm.Config{}, nil)

	_, err := a.GenerateAdvice(context.Background(), GenerateAdviceInput{
		ModelSpec: "openai:gpt-4o-mini",
		Scenario:  validScenario(),
	})
	requireNonRetryable(t, err)
}

func TestEvaluateResponse_ConfigErrors(t *testing.T) {
	a := testActivities()

	tests := []struct {
		name  string
		input EvaluateResponseInput
	}{
		{
			"no judges",
			EvaluateResponseInput{Scenario: validScenario(), ModelResponse: "advice"},
		},
		{
			"unknown judge provider",
			EvaluateResponseInput{
				JudgeSpecs:    []string{"cohere:command-r"},
				Scenario:      validScenario(),
				ModelResponse: "advice",
			},
		},
		{
			"invalid consensus method",
			EvaluateResponseInput{
				JudgeSpecs:      []string{"openai:gpt-4o", "anthropic:claude-sonnet-4-5"},
				ConsensusMethod: "invalid",
				Scenario:        validScenario(),
				ModelResponse:   "advice",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.EvaluateResponse(context.Background(), tt.input)
			requireNonRetryable(t, err)
		})
	}
}

func TestEvaluateResponseOutput_Evaluation(t *testing.T) {
	single := &domain.EvaluationResult{ScenarioID: "PB-1"}
	consensus := &domain.MultiJudgeEvaluationResult{ScenarioID: "PB-2"}

	assert.Nil(t, (&EvaluateResponseOutput{}).Evaluation())
	assert.Equal(t, domain.Evaluation(single), (&EvaluateResponseOutput{Single: single}).Evaluation())
	assert.Equal(t, domain.Evaluation(consensus), (&EvaluateResponseOutput{Consensus: consensus}).Evaluation())
}
