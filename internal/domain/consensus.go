package domain

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ConsensusMethod is the aggregation policy that turns a panel's votes into
// a single dimension score.
type ConsensusMethod string

// Supported consensus methods.
const (
	// ConsensusWeightedAverage computes sum(score_i * weight_i) / sum(weight_i)
	// using per-judge weights (1.0 when unset).
	ConsensusWeightedAverage ConsensusMethod = "weighted_average"

	// ConsensusMajority picks the most frequent score; ties break to the
	// higher score among the tied candidates.
	ConsensusMajority ConsensusMethod = "majority"

	// ConsensusMedian takes the numeric median; an even-length panel yields
	// the mean of the two middle values.
	ConsensusMedian ConsensusMethod = "median"
)

// String returns the string representation of the consensus method.
func (m ConsensusMethod) String() string { return string(m) }

// ParseConsensusMethod validates a method name at configuration time.
// Unknown names are rejected here, never at aggregation time.
func ParseConsensusMethod(name string) (ConsensusMethod, error) {
	switch m := ConsensusMethod(name); m {
	case ConsensusWeightedAverage, ConsensusMajority, ConsensusMedian:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of %q, %q, %q)",
			ErrInvalidConsensusMethod, name,
			ConsensusWeightedAverage, ConsensusMajority, ConsensusMedian)
	}
}

// ComputeConsensus combines an ordered sequence of per-judge scores into one
// consensus value. The judges slice mirrors the scores slice positionally and
// supplies the weight lookup for weighted averaging; weights default to 1.0
// per judge when absent. A zero total weight yields 0.0.
//
// The method is validated at evaluator construction via ParseConsensusMethod,
// so an unrecognized value here falls back to the arithmetic mean.
func ComputeConsensus(scores []int, judges []string, weights map[string]float64, method ConsensusMethod) float64 {
	if len(scores) == 0 {
		return 0
	}

	switch method {
	case ConsensusWeightedAverage:
		var weightedSum, totalWeight float64
		for i, score := range scores {
			weight := DefaultWeight
			if i < len(judges) {
				if w, ok := weights[judges[i]]; ok {
					weight = w
				}
			}
			weightedSum += float64(score) * weight
			totalWeight += weight
		}
		if totalWeight <= 0 {
			return 0
		}
		return weightedSum / totalWeight

	case ConsensusMajority:
		counts := make(map[int]int, len(scores))
		maxCount := 0
		for _, score := range scores {
			counts[score]++
			if counts[score] > maxCount {
				maxCount = counts[score]
			}
		}
		best := MinScore - 1
		for score, count := range counts {
			if count == maxCount && score > best {
				best = score
			}
		}
		return float64(best)

	case ConsensusMedian:
		sorted := toFloats(scores)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 1 {
			return sorted[mid]
		}
		return (sorted[mid-1] + sorted[mid]) / 2

	default:
		return stat.Mean(toFloats(scores), nil)
	}
}

// ComputeAgreement measures inter-judge agreement as the fraction of
// unordered judge pairs whose raw scores are exactly equal. Fewer than two
// scores is vacuously perfect agreement (1.0).
//
// This is a simple pairwise exact-match statistic, not a rank correlation or
// a chance-corrected kappa; equal scores count as agreement regardless of
// how likely that is by chance.
func ComputeAgreement(scores []int) float64 {
	if len(scores) < 2 {
		return 1.0
	}

	matching, totalPairs := 0, 0
	for i := 0; i < len(scores); i++ {
		for j := i + 1; j < len(scores); j++ {
			totalPairs++
			if scores[i] == scores[j] {
				matching++
			}
		}
	}
	return float64(matching) / float64(totalPairs)
}

// SampleStdDev returns the sample standard deviation of the values,
// or 0.0 for fewer than two values.
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// ScoreStdDev returns the sample standard deviation of integer vote scores.
func ScoreStdDev(scores []int) float64 {
	return SampleStdDev(toFloats(scores))
}

func toFloats(scores []int) []float64 {
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = float64(s)
	}
	return out
}
