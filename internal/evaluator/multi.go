package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/judge"
	"github.com/ahrav/parentbench/internal/llm"
)

// MultiJudge evaluates responses with an ordered panel of judge models and
// folds their votes into consensus scores under a configured aggregation
// policy. Modeled on the jury approach of "Replacing Judges with Juries"
// (Verga et al., 2024): several smaller judges outperform a single large one.
//
// Vote ordering within each ConsensusRubricScore always matches the panel
// order, and dimension ordering matches the fixed rubric order.
type MultiJudge struct {
	judges     []llm.Client
	judgeNames []string
	method     domain.ConsensusMethod
	weights    map[string]float64
	rubric     []domain.RubricDimension
	collector  *judge.Collector
	logger     *slog.Logger
}

// NewMultiJudge creates a panel evaluator. Construction fails fast on a
// panel smaller than two judges or an unknown consensus method. Judge
// weights default to 1.0 each when nil.
func NewMultiJudge(
	judges []llm.Client,
	consensusMethod string,
	weights map[string]float64,
	logger *slog.Logger,
) (*MultiJudge, error) {
	if len(judges) < 2 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrPanelTooSmall, len(judges))
	}

	method, err := domain.ParseConsensusMethod(consensusMethod)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(judges))
	for i, j := range judges {
		names[i] = j.ModelName()
	}

	effectiveWeights := make(map[string]float64, len(judges))
	if weights == nil {
		for _, name := range names {
			effectiveWeights[name] = domain.DefaultWeight
		}
	} else {
		maps.Copy(effectiveWeights, weights)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MultiJudge{
		judges:     judges,
		judgeNames: names,
		method:     method,
		weights:    effectiveWeights,
		rubric:     domain.DefaultRubric(),
		collector:  judge.NewCollector(logger),
		logger:     logger,
	}, nil
}

// Info implements Evaluator.
func (m *MultiJudge) Info() Info {
	weights := make(map[string]float64, len(m.weights))
	maps.Copy(weights, m.weights)
	return Info{
		Type:            domain.EvaluationTypeMultiJudge,
		JudgeModels:     append([]string(nil), m.judgeNames...),
		NumJudges:       len(m.judges),
		ConsensusMethod: m.method.String(),
		Weights:         weights,
	}
}

// Evaluate implements Evaluator.
func (m *MultiJudge) Evaluate(
	ctx context.Context,
	sc domain.Scenario,
	modelResponse, modelName string,
) (domain.Evaluation, error) {
	return m.EvaluateConsensus(ctx, sc, modelResponse, modelName)
}

// EvaluateConsensus runs the full panel evaluation and returns the concrete
// multi-judge result. For each rubric dimension, in order: collect one vote
// per judge in panel order, then compute the dimension's consensus score,
// agreement, and vote spread. After all dimensions, derive the overall
// consensus score, the cross-judge overall spread, and the safety verdict.
func (m *MultiJudge) EvaluateConsensus(
	ctx context.Context,
	sc domain.Scenario,
	modelResponse, modelName string,
) (*domain.MultiJudgeEvaluationResult, error) {
	m.logger.Debug("evaluating response with panel",
		"scenario_id", sc.ID, "model", modelName,
		"judges", m.judgeNames, "consensus_method", m.method)

	consensusScores := make([]domain.ConsensusRubricScore, 0, len(m.rubric))
	for _, dim := range m.rubric {
		cs, err := m.scoreDimension(ctx, sc, modelResponse, dim)
		if err != nil {
			return nil, err
		}
		consensusScores = append(consensusScores, cs)
	}

	totalWeight := domain.TotalWeight(m.rubric)

	// Reconstruct each judge's overall score from its raw votes to measure
	// how differently the panel would have scored the response overall.
	// This is deliberately not an average of per-dimension deviations.
	judgeOveralls := make([]float64, len(m.judges))
	for ji := range m.judges {
		var weightedSum float64
		for di, dim := range m.rubric {
			weightedSum += float64(consensusScores[di].Votes[ji].Score) * dim.Weight
		}
		judgeOveralls[ji] = weightedSum / totalWeight
	}
	overallStd := domain.SampleStdDev(judgeOveralls)

	// The panel's consensus overall weights each dimension's consensus score.
	var weightedSum float64
	for di, dim := range m.rubric {
		weightedSum += consensusScores[di].FinalScore * dim.Weight
	}
	overall := weightedSum / totalWeight

	safety := domain.ClassifyConsensusSafety(consensusScores, overall)

	m.logger.Debug("panel evaluation complete",
		"scenario_id", sc.ID,
		"overall_score", domain.Round2(overall),
		"overall_std", domain.Round2(overallStd),
		"safety", safety)

	return &domain.MultiJudgeEvaluationResult{
		ScenarioID:           sc.ID,
		ModelName:            modelName,
		OverallScore:         domain.Round2(overall),
		OverallStd:           domain.Round2(overallStd),
		SafetyClassification: safety,
		EvaluationType:       domain.EvaluationTypeMultiJudge,
		JudgeModels:          append([]string(nil), m.judgeNames...),
		ConsensusMethod:      m.method,
		ConsensusScores:      consensusScores,
		ModelResponse:        modelResponse,
		Metadata:             map[string]any{},
	}, nil
}

// scoreDimension collects the panel's votes for one dimension, preserving
// panel order, and aggregates them.
func (m *MultiJudge) scoreDimension(
	ctx context.Context,
	sc domain.Scenario,
	modelResponse string,
	dim domain.RubricDimension,
) (domain.ConsensusRubricScore, error) {
	votes := make([]domain.JudgeVote, 0, len(m.judges))
	for _, judgeClient := range m.judges {
		vote, err := m.collector.GetVote(ctx, judgeClient, sc, modelResponse, dim)
		if err != nil {
			return domain.ConsensusRubricScore{}, fmt.Errorf("scoring scenario %s: %w", sc.ID, err)
		}
		votes = append(votes, vote)
	}

	scores := make([]int, len(votes))
	for i, v := range votes {
		scores[i] = v.Score
	}

	final := domain.ComputeConsensus(scores, m.judgeNames, m.weights, m.method)
	agreement := domain.ComputeAgreement(scores)
	std := domain.ScoreStdDev(scores)

	m.logger.Debug("dimension scored",
		"dimension", dim.Name,
		"final_score", domain.Round2(final),
		"agreement", domain.Round2(agreement),
		"score_std", domain.Round2(std))

	return domain.ConsensusRubricScore{
		Dimension:  dim.Name,
		FinalScore: domain.Round2(final),
		Votes:      votes,
		Agreement:  domain.Round2(agreement),
		ScoreStd:   domain.Round2(std),
	}, nil
}
