package activity

import (
	"errors"

	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/llm"
)

// nonRetryable wraps an error as a Temporal non-retryable application error.
// Used for validation and configuration failures that retries cannot fix.
func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}

// classify maps an activity failure onto Temporal retry semantics.
// Configuration mistakes fail permanently; provider failures are left
// retryable so the workflow retry policy can absorb transient outages.
func classify(tag string, err error) error {
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey),
		errors.Is(err, llm.ErrUnknownProvider),
		errors.Is(err, domain.ErrPanelTooSmall),
		errors.Is(err, domain.ErrInvalidConsensusMethod),
		errors.Is(err, domain.ErrInvalidScenario):
		return nonRetryable(tag, err, err.Error())
	default:
		return err
	}
}
