// Command parentbench evaluates LLM parenting advice against rubric-based
// judge panels. The evaluate subcommand benchmarks one model; the compare
// subcommand ranks several models on the same scenarios.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ahrav/parentbench/internal/benchmark"
	"github.com/ahrav/parentbench/internal/domain"
	"github.com/ahrav/parentbench/internal/evaluator"
	"github.com/ahrav/parentbench/internal/llm"
	"github.com/ahrav/parentbench/internal/results"
	"github.com/ahrav/parentbench/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "evaluate":
		err = runEvaluate(ctx, os.Args[2:])
	case "compare":
		err = runCompare(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: parentbench <command> [flags]

Commands:
  evaluate   Evaluate a single model on parenting scenarios
  compare    Compare multiple models on the same scenarios`)
}

// commonFlags holds the flags shared by both subcommands.
type commonFlags struct {
	judges       string
	consensus    string
	scenarioPath string
	scenariosDir string
	verbose      bool
}

func registerCommon(fs *flag.FlagSet) *commonFlags {
	var c commonFlags
	fs.StringVar(&c.judges, "judges", "openai:gpt-4o", "Comma-separated judge model specs (provider:model); two or more run a consensus panel")
	fs.StringVar(&c.consensus, "consensus", "weighted_average", "Consensus method for judge panels: weighted_average, majority, or median")
	fs.StringVar(&c.scenarioPath, "scenario", "", "Path to a single scenario YAML file")
	fs.StringVar(&c.scenariosDir, "scenarios-dir", "scenarios", "Directory containing scenario YAML files")
	fs.BoolVar(&c.verbose, "v", false, "Verbose output")
	return &c
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runEvaluate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	common := registerCommon(fs)
	model := fs.String("model", "", "Subject model spec to evaluate (provider:model)")
	output := fs.String("output", "results/evaluation_results.json", "Output path for results JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *model == "" {
		return fmt.Errorf("-model is required")
	}

	logger := newLogger(common.verbose)
	slog.SetDefault(logger)

	cfg, err := llm.LoadConfig(ctx)
	if err != nil {
		return err
	}

	subject, err := llm.New(cfg, *model)
	if err != nil {
		return err
	}

	eval, err := buildEvaluator(cfg, common, logger)
	if err != nil {
		return err
	}

	scenarios, err := loadScenarios(common, logger)
	if err != nil {
		return err
	}

	runner := benchmark.NewRunner(eval, logger)
	evaluations, err := runner.Run(ctx, subject, scenarios)
	if err != nil {
		return err
	}
	if len(evaluations) == 0 {
		return fmt.Errorf("no scenarios evaluated successfully")
	}

	if err := results.Save(evaluations, *output); err != nil {
		return err
	}
	logger.Info("results saved", "path", *output)

	fmt.Print(results.FormatSummary(results.Summarize(evaluations)))
	return nil
}

func runCompare(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	common := registerCommon(fs)
	models := fs.String("models", "", "Comma-separated subject model specs to compare")
	output := fs.String("output", "results/comparison", "Output directory for comparison results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *models == "" {
		return fmt.Errorf("-models is required")
	}

	logger := newLogger(common.verbose)
	slog.SetDefault(logger)

	cfg, err := llm.LoadConfig(ctx)
	if err != nil {
		return err
	}

	var subjects []llm.Client
	for _, spec := range splitSpecs(*models) {
		subject, err := llm.New(cfg, spec)
		if err != nil {
			return fmt.Errorf("subject %s: %w", spec, err)
		}
		subjects = append(subjects, subject)
	}
	if len(subjects) == 0 {
		return fmt.Errorf("-models is required")
	}

	eval, err := buildEvaluator(cfg, common, logger)
	if err != nil {
		return err
	}

	scenarios, err := loadScenarios(common, logger)
	if err != nil {
		return err
	}

	runner := benchmark.NewRunner(eval, logger)
	allResults, err := runner.RunComparison(ctx, subjects, scenarios)
	if err != nil {
		return err
	}
	if len(allResults) == 0 {
		return fmt.Errorf("no models produced results")
	}

	for modelName, evaluations := range allResults {
		path := filepath.Join(*output, results.ModelFilename(modelName))
		if err := results.Save(evaluations, path); err != nil {
			return err
		}
		logger.Info("results saved", "model", modelName, "path", path)
	}

	cmp := results.Compare(allResults)
	cmpPath := filepath.Join(*output, "comparison.json")
	if err := results.SaveComparison(cmp, cmpPath); err != nil {
		return err
	}
	logger.Info("comparison saved", "path", cmpPath)

	fmt.Print(results.FormatComparison(cmp))
	return nil
}

// buildEvaluator constructs the judge clients and picks single-judge or
// consensus evaluation based on how many judges were requested.
func buildEvaluator(cfg llm.Config, common *commonFlags, logger *slog.Logger) (evaluator.Evaluator, error) {
	specs := splitSpecs(common.judges)
	if len(specs) == 0 {
		return nil, fmt.Errorf("-judges is required")
	}

	judges := make([]llm.Client, 0, len(specs))
	for _, spec := range specs {
		judgeClient, err := llm.New(cfg, spec)
		if err != nil {
			return nil, fmt.Errorf("judge %s: %w", spec, err)
		}
		judges = append(judges, judgeClient)
	}

	if len(judges) == 1 {
		return evaluator.NewSingleJudge(judges[0], logger), nil
	}
	return evaluator.NewMultiJudge(judges, common.consensus, nil, logger)
}

func loadScenarios(common *commonFlags, logger *slog.Logger) ([]domain.Scenario, error) {
	if common.scenarioPath != "" {
		sc, err := scenario.Load(common.scenarioPath)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded scenario", "path", common.scenarioPath)
		return []domain.Scenario{sc}, nil
	}

	scenarios, err := scenario.LoadDir(common.scenariosDir, logger)
	if err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios found in %s", common.scenariosDir)
	}
	logger.Info("loaded scenarios", "dir", common.scenariosDir, "count", len(scenarios))
	return scenarios, nil
}

func splitSpecs(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
