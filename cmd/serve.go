package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MCP-Pipeline/MCPStack/stack"
)

// ServeCmd loads a persisted pipeline, builds it and exposes the resulting
// action set over an MCP server until interrupted.
type ServeCmd struct {
	Pipeline string `short:"p" long:"pipeline" description:"Pipeline JSON path (falls back to MCPSTACK_CONFIG_PATH)"`
	Backend  string `short:"b" long:"backend" description:"Host-config backend used during build" default:"reference"`
}

func (c *ServeCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	pipeline := c.Pipeline
	if pipeline == "" {
		pipeline = cfg.EnvVar(stack.EnvConfigPath, "")
	}
	if pipeline == "" {
		return fmt.Errorf("no pipeline specified: pass -p/--pipeline or set %s", stack.EnvConfigPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := stack.Load(ctx, pipeline)
	if err != nil {
		return err
	}
	built, err := s.Build(ctx, c.Backend, &stack.GenerateOptions{PipelineConfigPath: pipeline})
	if err != nil {
		return err
	}
	return built.Run(ctx)
}
