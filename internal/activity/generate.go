package activity

import (
	"context"
	"time"

	"github.com/ahrav/parentbench/internal/benchmark"
	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/llm"
)

// GenerateAdviceInput is the request for the advice generation activity.
type GenerateAdviceInput struct {
	// ModelSpec selects the subject model ("provider:model").
	ModelSpec string `json:"model_spec"`

	// Scenario is the parenting situation to respond to.
	Scenario domain.Scenario `json:"scenario"`
}

// GenerateAdviceOutput carries the subject model's response.
type GenerateAdviceOutput struct {
	ModelName         string  `json:"model_name"`
	Response          string  `json:"response"`
	GenerationSeconds float64 `json:"generation_seconds"`
}

// GenerateAdvice asks the subject model for parenting advice on one
// scenario. Credential and provider mistakes fail the workflow immediately;
// transient provider errors surface retryable.
func (a *Activities) GenerateAdvice(
	ctx context.Context,
	input GenerateAdviceInput,
) (*GenerateAdviceOutput, error) {
	if err := input.Scenario.Validate(); err != nil {
		return nil, nonRetryable("GenerateAdvice", err, "invalid scenario")
	}

	subject, err := llm.New(a.cfg, input.ModelSpec)
	if err != nil {
		return nil, classify("GenerateAdvice", err)
	}

	a.logger.Info("generating advice",
		"scenario_id", input.Scenario.ID, "model", subject.ModelName())

	start := time.Now()
	response, err := benchmark.GenerateAdvice(ctx, subject, input.Scenario)
	if err != nil {
		return nil, classify("GenerateAdvice", err)
	}

	return &GenerateAdviceOutput{
		ModelName:         subject.ModelName(),
		Response:          response,
		GenerationSeconds: time.Since(start).Seconds(),
	}, nil
}
