// Package results persists evaluation results and renders human-readable
// summary and comparison reports.
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahrav/parentbench/internal/domain"
)

// MetaGenerationSeconds is the result metadata key holding how long the
// subject model took to generate its response.
const MetaGenerationSeconds = "generation_time_seconds"

// Save writes evaluation results to a JSON file, creating parent
// directories as needed. Results serialize with their full per-dimension
// detail, single-judge and multi-judge alike.
func Save(results []domain.Evaluation, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results file: %w", err)
	}
	return nil
}

// SaveComparison writes cross-model comparison statistics to a JSON file.
func SaveComparison(cmp Comparison, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	data, err := json.MarshalIndent(cmp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding comparison: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing comparison file: %w", err)
	}
	return nil
}

// ModelFilename converts a model name into a filesystem-safe file name.
func ModelFilename(modelName string) string {
	r := strings.NewReplacer("/", "_", ":", "_")
	return r.Replace(modelName) + ".json"
}
