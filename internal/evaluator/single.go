package evaluator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/judge"
	"github.com/ahrav/parentbench/internal/llm"
)

// SingleJudge evaluates responses with exactly one judge model: one vote per
// dimension, wrapped directly as the dimension score, with no consensus or
// agreement statistics.
type SingleJudge struct {
	judgeClient llm.Client
	rubric      []domain.RubricDimension
	collector   *judge.Collector
	logger      *slog.Logger
}

// NewSingleJudge creates a single-judge evaluator over the default rubric.
func NewSingleJudge(judgeClient llm.Client, logger *slog.Logger) *SingleJudge {
	if logger == nil {
		logger = slog.Default()
	}
	return &SingleJudge{
		judgeClient: judgeClient,
		rubric:      domain.DefaultRubric(),
		collector:   judge.NewCollector(logger),
		logger:      logger,
	}
}

// Info implements Evaluator.
func (s *SingleJudge) Info() Info {
	return Info{
		Type:       domain.EvaluationTypeSingleJudge,
		JudgeModel: s.judgeClient.ModelName(),
	}
}

// Evaluate implements Evaluator. Dimensions are scored in fixed rubric
// order; the overall score is the dimension-weighted average.
func (s *SingleJudge) Evaluate(
	ctx context.Context,
	sc domain.Scenario,
	modelResponse, modelName string,
) (domain.Evaluation, error) {
	s.logger.Debug("evaluating response",
		"scenario_id", sc.ID, "model", modelName, "judge", s.judgeClient.ModelName())

	scores := make([]domain.RubricScore, 0, len(s.rubric))
	var weightedSum float64

	for _, dim := range s.rubric {
		vote, err := s.collector.GetVote(ctx, s.judgeClient, sc, modelResponse, dim)
		if err != nil {
			return nil, fmt.Errorf("scoring scenario %s: %w", sc.ID, err)
		}

		rs, err := domain.NewRubricScore(dim.Name, vote.Score, vote.Reasoning)
		if err != nil {
			return nil, fmt.Errorf("scoring scenario %s: %w", sc.ID, err)
		}
		scores = append(scores, rs)
		weightedSum += float64(rs.Score) * dim.Weight

		s.logger.Debug("dimension scored", "dimension", dim.Name, "score", rs.Score)
	}

	overall := weightedSum / domain.TotalWeight(s.rubric)
	safety := domain.ClassifySafety(scores, overall)

	return &domain.EvaluationResult{
		ScenarioID:           sc.ID,
		ModelName:            modelName,
		OverallScore:         domain.Round2(overall),
		SafetyClassification: safety,
		RubricScores:         scores,
		ModelResponse:        modelResponse,
		Evaluator:            fmt.Sprintf("%s:%s", domain.EvaluationTypeSingleJudge, s.judgeClient.ModelName()),
		Metadata:             map[string]any{},
	}, nil
}
