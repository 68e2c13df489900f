package results

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gonum.org/v1/gonum/stat"

	"github.com/ahrav/parentbench/internal/domain"
)

// ModelStats aggregates one model's results for cross-model comparison.
type ModelStats struct {
	NumScenarios         int                                 `json:"num_scenarios"`
	OverallAverageScore  float64                             `json:"overall_average_score"`
	SafetyCounts         map[domain.SafetyClassification]int `json:"safety_classifications"`
	DimensionAverages    map[string]float64                  `json:"dimension_averages"`
	AvgGenerationSeconds float64                             `json:"avg_generation_time_seconds"`
	MinScore             float64                             `json:"min_score"`
	MaxScore             float64                             `json:"max_score"`
}

// Comparison holds cross-model comparison statistics for one benchmark run.
type Comparison struct {
	Models         map[string]ModelStats `json:"models"`
	Timestamp      string                `json:"timestamp"`
	TotalScenarios int                   `json:"total_scenarios"`
}

// Compare computes per-model statistics from each model's results. Models
// with no results are omitted.
func Compare(allResults map[string][]domain.Evaluation) Comparison {
	cmp := Comparison{
		Models:    make(map[string]ModelStats, len(allResults)),
		Timestamp: time.Now().Format(time.RFC3339),
	}

	for modelName, results := range allResults {
		if len(results) == 0 {
			continue
		}

		overall := make([]float64, len(results))
		safetyCounts := make(map[domain.SafetyClassification]int)
		dimScores := make(map[string][]float64)
		var genTotal float64

		for i, r := range results {
			overall[i] = r.Score()
			safetyCounts[r.Safety()]++
			for dim, score := range r.ByDimension() {
				dimScores[dim] = append(dimScores[dim], score)
			}
			genTotal += generationSeconds(r.Meta())
		}

		dimAvgs := make(map[string]float64, len(dimScores))
		for dim, scores := range dimScores {
			dimAvgs[dim] = round3(stat.Mean(scores, nil))
		}

		minScore, maxScore := overall[0], overall[0]
		for _, s := range overall[1:] {
			minScore = min(minScore, s)
			maxScore = max(maxScore, s)
		}

		cmp.Models[modelName] = ModelStats{
			NumScenarios:         len(results),
			OverallAverageScore:  round3(stat.Mean(overall, nil)),
			SafetyCounts:         safetyCounts,
			DimensionAverages:    dimAvgs,
			AvgGenerationSeconds: domain.Round2(genTotal / float64(len(results))),
			MinScore:             round3(minScore),
			MaxScore:             round3(maxScore),
		}
		cmp.TotalScenarios = len(results)
	}

	return cmp
}

// generationSeconds extracts the generation timing from result metadata,
// tolerating the numeric types a JSON round-trip produces.
func generationSeconds(meta map[string]any) float64 {
	switch v := meta[MetaGenerationSeconds].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// FormatComparison renders comparison statistics as a report: an overall
// scores table ranked by average score, then a per-dimension breakdown.
func FormatComparison(cmp Comparison) string {
	var b strings.Builder
	rule := strings.Repeat("=", 100)

	fmt.Fprintf(&b, "%s\nPARENTBENCH MODEL COMPARISON\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Total Scenarios: %d\n", cmp.TotalScenarios)
	fmt.Fprintf(&b, "Evaluated at: %s\n\n", cmp.Timestamp)

	ranked := rankedModels(cmp.Models)

	b.WriteString("OVERALL SCORES:\n")
	table := newReportTable(&b, []string{"Model", "Avg Score", "Min", "Max", "Safe %", "Avg Time (s)"})
	for _, name := range ranked {
		stats := cmp.Models[name]
		safePct := float64(stats.SafetyCounts[domain.SafetySafe]) / float64(stats.NumScenarios) * 100
		_ = table.Append([]string{
			name,
			fmt.Sprintf("%.3f", stats.OverallAverageScore),
			fmt.Sprintf("%.3f", stats.MinScore),
			fmt.Sprintf("%.3f", stats.MaxScore),
			fmt.Sprintf("%.1f", safePct),
			fmt.Sprintf("%.2f", stats.AvgGenerationSeconds),
		})
	}
	_ = table.Render()

	b.WriteString("\nDIMENSION BREAKDOWN:\n")
	for _, dim := range allDimensions(cmp.Models) {
		fmt.Fprintf(&b, "\n%s:\n", dim)
		for _, ms := range rankedByDimension(cmp.Models, dim) {
			fmt.Fprintf(&b, "  %-38s %.3f  %s\n", ms.name, ms.score, scoreBar(ms.score))
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	return b.String()
}

// newReportTable builds a markdown-style table writer shared by all reports.
func newReportTable(b *strings.Builder, headers []string) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(b,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{Left: tw.On, Top: tw.Off, Right: tw.On, Bottom: tw.Off},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}

// rankedModels orders model names by overall average score, best first.
func rankedModels(models map[string]ModelStats) []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := models[names[i]].OverallAverageScore, models[names[j]].OverallAverageScore
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})
	return names
}

func allDimensions(models map[string]ModelStats) []string {
	seen := make(map[string]struct{})
	for _, stats := range models {
		for dim := range stats.DimensionAverages {
			seen[dim] = struct{}{}
		}
	}
	dims := make([]string, 0, len(seen))
	for dim := range seen {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}

type modelScore struct {
	name  string
	score float64
}

func rankedByDimension(models map[string]ModelStats, dim string) []modelScore {
	out := make([]modelScore, 0, len(models))
	for name, stats := range models {
		out = append(out, modelScore{name, stats.DimensionAverages[dim]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].name < out[j].name
	})
	return out
}
