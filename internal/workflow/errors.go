package workflow

import "errors"

var (
	errEmptySubject = errors.New("subject model spec is required")
	errNoJudges     = errors.New("at least one judge model spec is required")
	errNoScenarios  = errors.New("at least one scenario is required")
)
