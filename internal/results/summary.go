package results

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/ahrav/parentbench/internal/domain"
)

// Summary aggregates one model's results across a benchmark run.
type Summary struct {
	ModelName         string                              `json:"model_name"`
	TotalScenarios    int                                 `json:"total_scenarios"`
	AverageScore      float64                             `json:"average_score"`
	SafetyCounts      map[domain.SafetyClassification]int `json:"safety_counts"`
	DimensionAverages map[string]float64                  `json:"dimension_averages"`
}

// Summarize computes aggregate statistics over one model's results.
// Returns the zero Summary when results is empty.
func Summarize(results []domain.Evaluation) Summary {
	if len(results) == 0 {
		return Summary{SafetyCounts: map[domain.SafetyClassification]int{}, DimensionAverages: map[string]float64{}}
	}

	overall := make([]float64, len(results))
	safetyCounts := make(map[domain.SafetyClassification]int)
	dimScores := make(map[string][]float64)

	for i, r := range results {
		overall[i] = r.Score()
		safetyCounts[r.Safety()]++
		for dim, score := range r.ByDimension() {
			dimScores[dim] = append(dimScores[dim], score)
		}
	}

	dimAvgs := make(map[string]float64, len(dimScores))
	for dim, scores := range dimScores {
		dimAvgs[dim] = stat.Mean(scores, nil)
	}

	return Summary{
		ModelName:         results[0].Subject(),
		TotalScenarios:    len(results),
		AverageScore:      domain.Round2(stat.Mean(overall, nil)),
		SafetyCounts:      safetyCounts,
		DimensionAverages: dimAvgs,
	}
}

// FormatSummary renders a summary as a human-readable report.
func FormatSummary(s Summary) string {
	if s.TotalScenarios == 0 {
		return "No results to display.\n"
	}

	var b strings.Builder
	rule := strings.Repeat("=", 80)

	fmt.Fprintf(&b, "%s\nPARENTBENCH EVALUATION RESULTS\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Model: %s\n", s.ModelName)
	fmt.Fprintf(&b, "Total Scenarios: %d\n", s.TotalScenarios)
	fmt.Fprintf(&b, "Overall Average Score: %.2f/5.0\n\n", s.AverageScore)

	b.WriteString("SAFETY CLASSIFICATION:\n")
	for _, sc := range []domain.SafetyClassification{domain.SafetySafe, domain.SafetyConcerning, domain.SafetyHarmful} {
		count := s.SafetyCounts[sc]
		pct := float64(count) / float64(s.TotalScenarios) * 100
		fmt.Fprintf(&b, "  %-12s %d (%.1f%%)\n", strings.ToUpper(string(sc))+":", count, pct)
	}

	b.WriteString("\nAVERAGE SCORES BY DIMENSION:\n")
	for _, da := range sortedDimensionAverages(s.DimensionAverages) {
		fmt.Fprintf(&b, "  %-40s %.2f/5.0  %s\n", da.name, da.avg, scoreBar(da.avg))
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}

type dimensionAverage struct {
	name string
	avg  float64
}

// sortedDimensionAverages orders dimensions best first, name as tiebreak.
func sortedDimensionAverages(avgs map[string]float64) []dimensionAverage {
	out := make([]dimensionAverage, 0, len(avgs))
	for name, avg := range avgs {
		out = append(out, dimensionAverage{name, avg})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].avg != out[j].avg {
			return out[i].avg > out[j].avg
		}
		return out[i].name < out[j].name
	})
	return out
}

// scoreBar renders a 0-5 score as a fixed-width gauge.
func scoreBar(score float64) string {
	const width = 50
	filled := int(score * 10)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// round3 rounds to three decimal places for comparison statistics.
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
