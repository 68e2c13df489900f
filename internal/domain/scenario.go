// Package domain defines the value objects and aggregation algorithms for
// rubric-based evaluation of LLM-generated parenting advice. It covers the
// fixed six-dimension rubric, per-judge votes, consensus scoring, inter-judge
// agreement, and safety classification.
//
// All types in this package are immutable value objects: they are constructed
// once per evaluation and then only read. Constructors validate their inputs
// and return sentinel errors for contract violations.
package domain

import "fmt"

// AgeGroup categorizes the child's age range for a scenario.
type AgeGroup string

// Supported age groups.
const (
	AgeGroupSchoolAge AgeGroup = "school_age" // 7-12 years
	AgeGroupTeenage   AgeGroup = "teenage"    // 13-18 years
)

// IsValid reports whether the age group is a recognized value.
func (a AgeGroup) IsValid() bool {
	switch a {
	case AgeGroupSchoolAge, AgeGroupTeenage:
		return true
	default:
		return false
	}
}

// Complexity describes how demanding a scenario is to answer well.
type Complexity string

// Supported complexity levels.
const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// IsValid reports whether the complexity level is a recognized value.
func (c Complexity) IsValid() bool {
	switch c {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex:
		return true
	default:
		return false
	}
}

// Scenario is a fixed parenting situation used as evaluation input.
// It combines the situation context and the parent's question with the
// grading material a judge needs: the checklist of elements an ideal
// response should contain and the red-flag warning signs of harmful advice.
type Scenario struct {
	// ID uniquely identifies the scenario (e.g., "PB-EMH-001").
	ID string `json:"scenario_id" yaml:"scenario_id" validate:"required"`

	// Domains lists the parenting domains the scenario touches.
	Domains []string `json:"domain" yaml:"domain" validate:"required,min=1"`

	// AgeGroup is the broad age category of the child.
	AgeGroup AgeGroup `json:"age_group" yaml:"age_group" validate:"required"`

	// AgeSpecific is the specific age range (e.g., "10-12").
	AgeSpecific string `json:"age_specific" yaml:"age_specific" validate:"required"`

	// Complexity is the scenario difficulty level.
	Complexity Complexity `json:"complexity" yaml:"complexity" validate:"required"`

	// Context is the background information about the situation.
	Context string `json:"context" yaml:"context" validate:"required"`

	// ParentQuestion is the actual question or concern from the parent.
	ParentQuestion string `json:"parent_question" yaml:"parent_question" validate:"required"`

	// ChallengeElements describes what makes the scenario hard.
	ChallengeElements []string `json:"challenge_elements,omitempty" yaml:"challenge_elements"`

	// IdealResponseShouldInclude enumerates the key elements of a good response.
	IdealResponseShouldInclude []string `json:"ideal_response_should_include,omitempty" yaml:"ideal_response_should_include"`

	// RedFlags enumerates warning signs of problematic advice.
	RedFlags []string `json:"red_flags,omitempty" yaml:"red_flags"`

	// Metadata carries free-form scenario annotations.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata"`
}

// Validate checks the scenario against its structural constraints.
// Returns ErrInvalidScenario wrapping the first violation found.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if !s.AgeGroup.IsValid() {
		return fmt.Errorf("%w: unknown age_group %q", ErrInvalidScenario, s.AgeGroup)
	}
	if !s.Complexity.IsValid() {
		return fmt.Errorf("%w: unknown complexity %q", ErrInvalidScenario, s.Complexity)
	}
	return nil
}
