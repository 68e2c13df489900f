package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConsensusMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ConsensusMethod
		wantErr bool
	}{
		{"weighted average", "weighted_average", ConsensusWeightedAverage, false},
		{"majority", "majority", ConsensusMajority, false},
		{"median", "median", ConsensusMedian, false},
		{"unknown method", "invalid", "", true},
		{"empty method", "", "", true},
		{"mean is not a method", "mean", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConsensusMethod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConsensusMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeConsensus_Median(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"odd panel", []int{3, 4, 5}, 4},
		{"even panel averages middle values", []int{3, 5}, 4.0},
		{"order independent", []int{5, 3, 4}, 4},
		{"single score", []int{2}, 2},
		{"even panel four votes", []int{1, 2, 4, 5}, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeConsensus(tt.scores, nil, nil, ConsensusMedian)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestComputeConsensus_Majority(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"clear majority", []int{4, 4, 5}, 4},
		{"two-way tie goes to higher score", []int{4, 5}, 5},
		{"three-way tie goes to highest", []int{2, 3, 4}, 4},
		{"majority of low scores", []int{1, 1, 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeConsensus(tt.scores, nil, nil, ConsensusMajority)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestComputeConsensus_WeightedAverage(t *testing.T) {
	judges := []string{"judge-a", "judge-b"}

	t.Run("explicit weights", func(t *testing.T) {
		weights := map[string]float64{"judge-a": 2.0, "judge-b": 1.0}
		got := ComputeConsensus([]int{4, 5}, judges, weights, ConsensusWeightedAverage)
		assert.InDelta(t, 4.333, got, 0.001)
	})

	t.Run("missing weights default to 1.0", func(t *testing.T) {
		got := ComputeConsensus([]int{4, 5}, judges, nil, ConsensusWeightedAverage)
		assert.InDelta(t, 4.5, got, 1e-9)
	})

	t.Run("partial weights", func(t *testing.T) {
		weights := map[string]float64{"judge-a": 3.0}
		got := ComputeConsensus([]int{2, 4}, judges, weights, ConsensusWeightedAverage)
		// (2*3 + 4*1) / 4 = 2.5
		assert.InDelta(t, 2.5, got, 1e-9)
	})

	t.Run("zero total weight yields zero", func(t *testing.T) {
		weights := map[string]float64{"judge-a": 0, "judge-b": 0}
		got := ComputeConsensus([]int{4, 5}, judges, weights, ConsensusWeightedAverage)
		assert.Zero(t, got)
	})

	t.Run("empty scores yield zero", func(t *testing.T) {
		got := ComputeConsensus(nil, nil, nil, ConsensusWeightedAverage)
		assert.Zero(t, got)
	})
}

func TestComputeAgreement(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   float64
	}{
		{"all equal is perfect agreement", []int{4, 4, 4}, 1.0},
		{"all different is zero agreement", []int{1, 2, 3}, 0.0},
		{"one matching pair of three", []int{4, 4, 5}, 1.0 / 3.0},
		{"single score is vacuously perfect", []int{3}, 1.0},
		{"empty is vacuously perfect", nil, 1.0},
		{"pair agreeing", []int{5, 5}, 1.0},
		{"pair disagreeing", []int{4, 5}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAgreement(tt.scores)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestScoreStdDev(t *testing.T) {
	t.Run("fewer than two scores", func(t *testing.T) {
		assert.Zero(t, ScoreStdDev([]int{4}))
		assert.Zero(t, ScoreStdDev(nil))
	})

	t.Run("identical scores", func(t *testing.T) {
		assert.Zero(t, ScoreStdDev([]int{3, 3, 3}))
	})

	t.Run("sample standard deviation", func(t *testing.T) {
		// Sample std of [2, 4] is sqrt(2).
		assert.InDelta(t, 1.4142, ScoreStdDev([]int{2, 4}), 0.001)
	})
}
