// Package workflow orchestrates benchmark runs as Temporal workflows.
// The control flow is deterministic: per scenario, generate advice, then
// evaluate it, with all I/O pushed into activities.
package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/parentbench/internal/activity"
	"github.com/ahrav/parentbench/internal/domain"
)

// TaskQueue is the Temporal task queue shared by workers and starters.
const TaskQueue = "parentbench"

// BenchmarkRequest configures one benchmark workflow run.
type BenchmarkRequest struct {
	// SubjectSpec selects the model under evaluation ("provider:model").
	SubjectSpec string `json:"subject_spec"`

	// JudgeSpecs selects the judge models. One spec runs a single judge,
	// two or more run a consensus panel.
	JudgeSpecs []string `json:"judge_specs"`

	// ConsensusMethod selects the panel aggregation policy.
	ConsensusMethod string `json:"consensus_method,omitempty"`

	// JudgeWeights optionally weights panel votes by judge model name.
	JudgeWeights map[string]float64 `json:"judge_weights,omitempty"`

	// Scenarios are loaded by the starter so the workflow input is
	// self-contained and replayable.
	Scenarios []domain.Scenario `json:"scenarios"`

	// ActivityTimeoutSeconds bounds each activity attempt. Zero uses the
	// default.
	ActivityTimeoutSeconds int `json:"activity_timeout_seconds,omitempty"`
}

const defaultActivityTimeout = 5 * time.Minute

// BenchmarkResult is the workflow output: one outcome per evaluated
// scenario plus the IDs of scenarios skipped after activity failures.
type BenchmarkResult struct {
	ModelName string                            `json:"model_name"`
	Outcomes  []activity.EvaluateResponseOutput `json:"outcomes"`
	Skipped   []string                          `json:"skipped_scenario_ids,omitempty"`
}

// BenchmarkWorkflow evaluates one subject model on a set of scenarios.
// Scenarios are processed in order; a scenario whose activities exhaust
// their retries is recorded as skipped rather than failing the run.
func BenchmarkWorkflow(ctx workflow.Context, req BenchmarkRequest) (*BenchmarkResult, error) {
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "benchmark.v", workflow.DefaultVersion, currentVersion)

	if err := validateRequest(req); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid benchmark request", "Validation", err)
	}

	timeout := defaultActivityTimeout
	if req.ActivityTimeoutSeconds > 0 {
		timeout = time.Duration(req.ActivityTimeoutSeconds) * time.Second
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: timeout,
		HeartbeatTimeout:    30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	logger := workflow.GetLogger(ctx)
	var a *activity.Activities

	result := &BenchmarkResult{}
	for _, sc := range req.Scenarios {
		var gen activity.GenerateAdviceOutput
		err := workflow.ExecuteActivity(ctx, a.GenerateAdvice, activity.GenerateAdviceInput{
			ModelSpec: req.SubjectSpec,
			Scenario:  sc,
		}).Get(ctx, &gen)
		if err != nil {
			logger.Warn("advice generation failed, skipping scenario",
				"scenario_id", sc.ID, "error", err)
			result.Skipped = append(result.Skipped, sc.ID)
			continue
		}
		result.ModelName = gen.ModelName

		var eval activity.EvaluateResponseOutput
		err = workflow.ExecuteActivity(ctx, a.EvaluateResponse, activity.EvaluateResponseInput{
			JudgeSpecs:        req.JudgeSpecs,
			ConsensusMethod:   req.ConsensusMethod,
			JudgeWeights:      req.JudgeWeights,
			Scenario:          sc,
			ModelResponse:     gen.Response,
			ModelName:         gen.ModelName,
			GenerationSeconds: gen.GenerationSeconds,
		}).Get(ctx, &eval)
		if err != nil {
			logger.Warn("evaluation failed, skipping scenario",
				"scenario_id", sc.ID, "error", err)
			result.Skipped = append(result.Skipped, sc.ID)
			continue
		}

		result.Outcomes = append(result.Outcomes, eval)
	}

	return result, nil
}

func validateRequest(req BenchmarkRequest) error {
	if req.SubjectSpec == "" {
		return errEmptySubject
	}
	if len(req.JudgeSpecs) == 0 {
		return errNoJudges
	}
	if len(req.Scenarios) == 0 {
		return errNoScenarios
	}
	for i := range req.Scenarios {
		if err := req.Scenarios[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
