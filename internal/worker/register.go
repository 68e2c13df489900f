// Package worker registers benchmark workflows and activities with a
// Temporal worker and provides startup helpers.
package worker

import (
	"log/slog"

	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/parentbench/internal/activity"
	"github.com/ahrav/parentbench/internal/llm"
	"github.com/ahrav/parentbench/internal/workflow"
)

// RegisterAll registers the benchmark workflow and its activities with the
// Temporal worker. Call once during worker initialization before starting
// the worker; registration is not thread-safe.
func RegisterAll(w sdkworker.Worker, cfg llm.Config, logger *slog.Logger) {
	activities := activity.NewActivities(cfg, logger)

	w.RegisterWorkflow(workflow.BenchmarkWorkflow)

	w.RegisterActivity(activities.GenerateAdvice)
	w.RegisterActivity(activities.EvaluateResponse)
}
