package domain

import (
	"fmt"
	"math"
)

// JudgeVote is a single judge's opinion on one dimension for one response.
type JudgeVote struct {
	// JudgeModel identifies the judge that cast this vote.
	JudgeModel string `json:"judge_model"`

	// Score is the integer rubric score in [0,5].
	Score int `json:"score"`

	// Reasoning is the judge's free-text rationale for the score.
	Reasoning string `json:"reasoning"`
}

// NewJudgeVote constructs a validated vote. A score outside [0,5] is a hard
// construction error; callers must not clamp. Parsing has already bounded the
// score by the time a vote is built, so a failure here signals a broken
// invariant upstream.
func NewJudgeVote(judgeModel string, score int, reasoning string) (JudgeVote, error) {
	if score < MinScore || score > MaxScore {
		return JudgeVote{}, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, score)
	}
	return JudgeVote{
		JudgeModel: judgeModel,
		Score:      score,
		Reasoning:  reasoning,
	}, nil
}

// RubricScore is a single judge's score for one dimension, used by the
// single-judge evaluator where no aggregation is needed.
type RubricScore struct {
	// Dimension is the rubric dimension name.
	Dimension string `json:"dimension"`

	// Score is the integer rubric score in [0,5].
	Score int `json:"score"`

	// Reasoning explains the score.
	Reasoning string `json:"reasoning"`
}

// NewRubricScore constructs a validated dimension score.
// Scores outside [0,5] are rejected with ErrScoreOutOfRange.
func NewRubricScore(dimension string, score int, reasoning string) (RubricScore, error) {
	if score < MinScore || score > MaxScore {
		return RubricScore{}, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, score)
	}
	return RubricScore{
		Dimension: dimension,
		Score:     score,
		Reasoning: reasoning,
	}, nil
}

// ConsensusRubricScore is the aggregated result for one dimension: the
// consensus score derived from the full panel's votes, plus agreement and
// spread statistics over the raw votes.
//
// Invariants: Votes is ordered to match the judge panel order and its length
// equals the panel size; FinalScore is deterministically derived from Votes
// via the configured consensus method.
type ConsensusRubricScore struct {
	// Dimension is the rubric dimension name.
	Dimension string `json:"dimension"`

	// FinalScore is the consensus score, possibly fractional.
	FinalScore float64 `json:"final_score"`

	// Votes holds every judge's vote in panel order.
	Votes []JudgeVote `json:"votes"`

	// Agreement is the pairwise exact-match fraction in [0,1].
	Agreement float64 `json:"agreement"`

	// ScoreStd is the sample standard deviation of the raw vote scores.
	ScoreStd float64 `json:"score_std"`
}

// Round2 rounds a value to two decimal places. All floating intermediate
// results are rounded before being placed in a result object.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
