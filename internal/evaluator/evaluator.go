// Package evaluator implements the single- and multi-judge evaluation
// strategies over the fixed parenting rubric. Both strategies satisfy the
// Evaluator interface; they share a contract, not state, so callers can swap
// one for the other without caring which is behind it.
package evaluator

import (
	"context"

	"github.com/ahrav/parentbench/internal/domain"
)

// Evaluator scores one model response against the rubric and reports its own
// configuration. Implementations must be safe for sequential reuse across
// scenarios; each Evaluate call is independent and side-effect-free beyond
// its return value and logging.
type Evaluator interface {
	// Evaluate scores a model's response to a scenario.
	Evaluate(ctx context.Context, sc domain.Scenario, modelResponse, modelName string) (domain.Evaluation, error)

	// Info returns metadata about the evaluator configuration.
	Info() Info
}

// Info describes an evaluator's configuration for run manifests and
// persisted results.
type Info struct {
	// Type is the evaluation strategy tag ("llm_judge" or "multi_judge").
	Type string `json:"type"`

	// JudgeModel is the single judge's model name (single-judge only).
	JudgeModel string `json:"judge_model,omitempty"`

	// JudgeModels lists the panel in order (multi-judge only).
	JudgeModels []string `json:"judge_models,omitempty"`

	// NumJudges is the panel size (multi-judge only).
	NumJudges int `json:"num_judges,omitempty"`

	// ConsensusMethod is the configured aggregation policy (multi-judge only).
	ConsensusMethod string `json:"consensus_method,omitempty"`

	// Weights maps judge model name to its consensus weight (multi-judge only).
	Weights map[string]float64 `json:"weights,omitempty"`
}
