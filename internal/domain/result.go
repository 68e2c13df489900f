package domain

// Evaluation type tags recorded in persisted results. Downstream comparison
// tooling reads these, so they are part of the serialization contract.
const (
	EvaluationTypeSingleJudge = "llm_judge"
	EvaluationTypeMultiJudge  = "multi_judge"
)

// Evaluation is the read surface shared by single- and multi-judge results.
// Any evaluator producing one of the two concrete result types below is
// substitutable for callers that aggregate, persist, or display results.
type Evaluation interface {
	// Scenario returns the evaluated scenario's ID.
	Scenario() string

	// Subject returns the name of the model whose response was evaluated.
	Subject() string

	// Score returns the overall weighted score.
	Score() float64

	// Safety returns the derived safety classification.
	Safety() SafetyClassification

	// ByDimension returns each dimension's (consensus) score by name.
	ByDimension() map[string]float64

	// Meta returns the free-form evaluation metadata map.
	Meta() map[string]any
}

// EvaluationResult is the composite result of a single-judge evaluation:
// one RubricScore per dimension, a weighted overall score, and a safety
// verdict. Constructed once per evaluation and then only read.
type EvaluationResult struct {
	ScenarioID           string               `json:"scenario_id"`
	ModelName            string               `json:"model_name"`
	OverallScore         float64              `json:"overall_score"`
	SafetyClassification SafetyClassification `json:"safety_classification"`
	RubricScores         []RubricScore        `json:"rubric_scores"`
	ModelResponse        string               `json:"model_response"`

	// Evaluator tags the judge configuration, e.g. "llm_judge:gpt-4o".
	Evaluator string `json:"evaluator"`

	Metadata map[string]any `json:"metadata"`
}

// Scenario implements Evaluation.
func (r *EvaluationResult) Scenario() string { return r.ScenarioID }

// Subject implements Evaluation.
func (r *EvaluationResult) Subject() string { return r.ModelName }

// Score implements Evaluation.
func (r *EvaluationResult) Score() float64 { return r.OverallScore }

// Safety implements Evaluation.
func (r *EvaluationResult) Safety() SafetyClassification { return r.SafetyClassification }

// ByDimension implements Evaluation.
func (r *EvaluationResult) ByDimension() map[string]float64 {
	scores := make(map[string]float64, len(r.RubricScores))
	for _, rs := range r.RubricScores {
		scores[rs.Dimension] = float64(rs.Score)
	}
	return scores
}

// Meta implements Evaluation.
func (r *EvaluationResult) Meta() map[string]any { return r.Metadata }

// MultiJudgeEvaluationResult is the composite result of a panel evaluation:
// one ConsensusRubricScore per dimension in rubric order, the consensus
// overall score, and the spread across the panel.
//
// OverallStd reflects variance in how differently the whole panel would have
// scored the response overall: it is the sample standard deviation of each
// judge's reconstructed overall score (that judge's raw votes folded with the
// dimension weights), not an average of per-dimension deviations.
type MultiJudgeEvaluationResult struct {
	ScenarioID           string                 `json:"scenario_id"`
	ModelName            string                 `json:"model_name"`
	OverallScore         float64                `json:"overall_score"`
	OverallStd           float64                `json:"overall_std"`
	SafetyClassification SafetyClassification   `json:"safety_classification"`
	EvaluationType       string                 `json:"evaluation_type"`
	JudgeModels          []string               `json:"judge_models"`
	ConsensusMethod      ConsensusMethod        `json:"consensus_method"`
	ConsensusScores      []ConsensusRubricScore `json:"consensus_scores"`
	ModelResponse        string                 `json:"model_response"`
	Metadata             map[string]any         `json:"metadata"`
}

// Scenario implements Evaluation.
func (r *MultiJudgeEvaluationResult) Scenario() string { return r.ScenarioID }

// Subject implements Evaluation.
func (r *MultiJudgeEvaluationResult) Subject() string { return r.ModelName }

// Score implements Evaluation.
func (r *MultiJudgeEvaluationResult) Score() float64 { return r.OverallScore }

// Safety implements Evaluation.
func (r *MultiJudgeEvaluationResult) Safety() SafetyClassification { return r.SafetyClassification }

// ByDimension implements Evaluation.
func (r *MultiJudgeEvaluationResult) ByDimension() map[string]float64 {
	scores := make(map[string]float64, len(r.ConsensusScores))
	for _, cs := range r.ConsensusScores {
		scores[cs.Dimension] = cs.FinalScore
	}
	return scores
}

// Meta implements Evaluation.
func (r *MultiJudgeEvaluationResult) Meta() map[string]any { return r.Metadata }
