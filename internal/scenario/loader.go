// Package scenario loads benchmark scenarios from YAML files on disk.
package scenario

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ahrav/parentbench/internal/domain"
)

// Load reads and validates a single scenario from a YAML file.
func Load(path string) (domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("reading scenario file: %w", err)
	}

	var sc domain.Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return domain.Scenario{}, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}

	if err := sc.Validate(); err != nil {
		return domain.Scenario{}, fmt.Errorf("scenario file %s: %w", path, err)
	}

	return sc, nil
}

// LoadDir walks a directory tree and loads every *.yaml and *.yml file as a
// scenario. Files that fail to parse or validate are logged and skipped so
// one malformed file does not sink a whole benchmark run. Results are
// ordered by scenario ID for deterministic runs.
func LoadDir(dir string, logger *slog.Logger) ([]domain.Scenario, error) {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scenarios directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scenarios directory: %s is not a directory", dir)
	}

	var scenarios []domain.Scenario
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		sc, loadErr := Load(path)
		if loadErr != nil {
			logger.Warn("skipping scenario file", "path", path, "error", loadErr)
			return nil
		}
		scenarios = append(scenarios, sc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking scenarios directory: %w", err)
	}

	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].ID < scenarios[j].ID })
	return scenarios, nil
}
