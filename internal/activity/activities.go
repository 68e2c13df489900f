// Package activity implements the Temporal activities for benchmark runs:
// advice generation against subject models and response evaluation by judge
// panels. Activities hold the non-deterministic work so the workflow stays
// replay-safe.
package activity

import (
	"log/slog"

	"github.com/ahrav/parentbench/internal/llm"
)

// Activities bundles the benchmark activities and their shared dependencies.
// A single instance is registered with the worker at startup.
type Activities struct {
	cfg    llm.Config
	logger *slog.Logger
}

// NewActivities creates the activity set. The LLM configuration supplies
// provider credentials for clients built per activity invocation.
func NewActivities(cfg llm.Config, logger *slog.Logger) *Activities {
	if logger == nil {
		logger = slog.Default()
	}
	return &Activities{cfg: cfg, logger: logger}
}
