package activity

import (
	"context"
	"fmt"

	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/evaluator"
	"github.com/ahrav/parentbench/internal/llm"
	"github.com/ahrav/parentbench/internal/results"
)

// EvaluateResponseInput is the request for the response evaluation activity.
type EvaluateResponseInput struct {
	// JudgeSpecs selects the judge models. One spec builds a single-judge
	// evaluator; two or more build a consensus panel.
	JudgeSpecs []string `json:"judge_specs"`

	// ConsensusMethod selects the panel aggregation policy. Ignored for a
	// single judge.
	ConsensusMethod string `json:"consensus_method,omitempty"`

	// JudgeWeights optionally weights panel votes by judge model name.
	JudgeWeights map[string]float64 `json:"judge_weights,omitempty"`

	Scenario          domain.Scenario `json:"scenario"`
	ModelResponse     string          `json:"model_response"`
	ModelName         string          `json:"model_name"`
	GenerationSeconds float64         `json:"generation_seconds"`
}

// EvaluateResponseOutput carries the evaluation result. Exactly one of
// Single or Consensus is set, matching the evaluator that ran. The split
// keeps Temporal's JSON round-trip on concrete types.
type EvaluateResponseOutput struct {
	Single    *domain.EvaluationResult           `json:"single,omitempty"`
	Consensus *domain.MultiJudgeEvaluationResult `json:"consensus,omitempty"`
}

// Evaluation returns the populated result as the common interface.
func (o *EvaluateResponseOutput) Evaluation() domain.Evaluation {
	if o.Consensus != nil {
		return o.Consensus
	}
	if o.Single != nil {
		return o.Single
	}
	return nil
}

// EvaluateResponse scores one model response with the configured judges.
func (a *Activities) EvaluateResponse(
	ctx context.Context,
	input EvaluateResponseInput,
) (*EvaluateResponseOutput, error) {
	if len(input.JudgeSpecs) == 0 {
		return nil, nonRetryable("EvaluateResponse", nil, "no judge models configured")
	}

	judges := make([]llm.Client, 0, len(input.JudgeSpecs))
	for _, spec := range input.JudgeSpecs {
		judgeClient, err := llm.New(a.cfg, spec)
		if err != nil {
			return nil, classify("EvaluateResponse", err)
		}
		judges = append(judges, judgeClient)
	}

	eval, err := a.buildEvaluator(judges, input)
	if err != nil {
		return nil, classify("EvaluateResponse", err)
	}

	a.logger.Info("evaluating response",
		"scenario_id", input.Scenario.ID, "model", input.ModelName,
		"judges", len(judges))

	result, err := eval.Evaluate(ctx, input.Scenario, input.ModelResponse, input.ModelName)
	if err != nil {
		return nil, classify("EvaluateResponse", err)
	}
	result.Meta()[results.MetaGenerationSeconds] = input.GenerationSeconds

	output := &EvaluateResponseOutput{}
	switch r := result.(type) {
	case *domain.EvaluationResult:
		output.Single = r
	case *domain.MultiJudgeEvaluationResult:
		output.Consensus = r
	default:
		return nil, nonRetryable("EvaluateResponse", nil,
			fmt.Sprintf("unexpected result type %T", result))
	}
	return output, nil
}

func (a *Activities) buildEvaluator(judges []llm.Client, input EvaluateResponseInput) (evaluator.Evaluator, error) {
	if len(judges) == 1 {
		return evaluator.NewSingleJudge(judges[0], a.logger), nil
	}
	return evaluator.NewMultiJudge(judges, input.ConsensusMethod, input.JudgeWeights, a.logger)
}
