// Command worker runs a Temporal worker hosting the benchmark workflow and
// its activities.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/parentbench/internal/llm"
	"github.com/ahrav/parentbench/internal/worker"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(context.Background(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	workerCfg, err := worker.LoadConfig(ctx)
	if err != nil {
		return err
	}

	llmCfg, err := llm.LoadConfig(ctx)
	if err != nil {
		return err
	}

	c, err := worker.Dial(workerCfg)
	if err != nil {
		return err
	}
	defer c.Close()

	logger.Info("worker starting",
		"host_port", workerCfg.HostPort, "namespace", workerCfg.Namespace)

	w := worker.New(c, llmCfg, logger)
	return w.Run(sdkworker.InterruptCh())
}
