package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sethvargo/go-envconfig"
	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/parentbench/internal/llm"
	"github.com/ahrav/parentbench/internal/workflow"
)

// Config holds the Temporal connection settings for workers and starters.
type Config struct {
	HostPort  string `env:"TEMPORAL_HOST_PORT, default=localhost:7233"`
	Namespace string `env:"TEMPORAL_NAMESPACE, default=default"`
}

// LoadConfig reads Temporal settings from the environment.
func LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading temporal config: %w", err)
	}
	return cfg, nil
}

// Dial connects to the Temporal server.
func Dial(cfg Config) (client.Client, error) {
	c, err := client.Dial(client.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to temporal: %w", err)
	}
	return c, nil
}

// New builds a fully registered benchmark worker on the shared task queue.
func New(c client.Client, llmCfg llm.Config, logger *slog.Logger) sdkworker.Worker {
	w := sdkworker.New(c, workflow.TaskQueue, sdkworker.Options{})
	RegisterAll(w, llmCfg, logger)
	return w
}
