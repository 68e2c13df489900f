package domain

import "errors"

// Domain-level errors returned by constructors and aggregation functions.
var (
	// ErrScoreOutOfRange indicates a vote score outside the 0-5 rubric range.
	// This is a hard construction error and is never silently clamped.
	ErrScoreOutOfRange = errors.New("score must be between 0 and 5")

	// ErrInvalidConsensusMethod indicates an unrecognized consensus method name.
	ErrInvalidConsensusMethod = errors.New("invalid consensus method")

	// ErrPanelTooSmall indicates a multi-judge panel with fewer than two judges.
	ErrPanelTooSmall = errors.New("multi-judge panel requires at least 2 judges")

	// ErrInvalidScenario indicates a scenario that fails structural validation.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrEmptyVotes indicates that no votes were provided for aggregation.
	ErrEmptyVotes = errors.New("no votes provided")
)
