package judge

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ahrav/parentbench/internal/domain"
)

// Parse errors surfaced to the fallback chain; none escape the collector.
var (
	errMissingScore     = errors.New("judge response missing score field")
	errMissingReasoning = errors.New("judge response missing reasoning field")
)

const fenceDelimiter = "```"

// fallbackScore is used when no digit in [0,5] can be salvaged at all.
const fallbackScore = 3

// scorePattern finds the first standalone digit in [0,5] for fallback parsing.
var scorePattern = regexp.MustCompile(`\b([0-5])\b`)

// verdict is the JSON object a well-behaved judge returns. Pointer fields
// distinguish a missing key from a zero value.
type verdict struct {
	Score     *int    `json:"score"`
	Reasoning *string `json:"reasoning"`
}

// stripFences extracts the fenced content from a response that opens with a
// code fence. It is an explicit small state machine: a line beginning with
// three backticks toggles the inside-fence state, and only lines seen while
// inside a fence are kept. Responses that do not start with a fence pass
// through untouched.
func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, fenceDelimiter) {
		return trimmed
	}

	var kept []string
	inside := false
	for _, line := range strings.Split(trimmed, "\n") {
		if strings.HasPrefix(line, fenceDelimiter) {
			inside = !inside
			continue
		}
		if inside {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// parseVerdict strictly parses a judge response: optional fence stripping,
// JSON decoding, required-key checks, and the [0,5] range check. Any failure
// is returned for the caller's fallback chain to absorb.
func parseVerdict(raw string) (score int, reasoning string, err error) {
	cleaned := stripFences(raw)

	var v verdict
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return 0, "", fmt.Errorf("decoding judge response: %w", err)
	}
	if v.Score == nil {
		return 0, "", errMissingScore
	}
	if v.Reasoning == nil {
		return 0, "", errMissingReasoning
	}
	if *v.Score < domain.MinScore || *v.Score > domain.MaxScore {
		return 0, "", fmt.Errorf("%w: got %d", domain.ErrScoreOutOfRange, *v.Score)
	}

	return *v.Score, *v.Reasoning, nil
}

// salvageScore scans raw text for the first standalone digit in [0,5].
// Returns the fallback default of 3 when nothing usable is found; the second
// return reports whether a digit was actually salvaged.
func salvageScore(raw string) (int, bool) {
	match := scorePattern.FindStringSubmatch(raw)
	if match == nil {
		return fallbackScore, false
	}
	// The pattern admits only single digits 0-5, so this cannot fail.
	return int(match[1][0] - '0'), true
}

// truncate caps a string for log and rationale embedding.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
