package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/MCP-Pipeline/MCPStack/stack"
)

// BuildCmd composes a pipeline – from a persisted definition or from presets
// – and produces a host configuration artifact without starting a server.
type BuildCmd struct {
	Pipeline     string `short:"p" long:"pipeline" description:"Pipeline JSON path to load"`
	Presets      string `long:"presets" description:"Comma-separated preset identifiers" default:"starter"`
	Backend      string `short:"b" long:"backend" description:"Host-config backend" default:"reference"`
	Output       string `short:"o" long:"output" description:"Where to save the artifact (stdout if empty)"`
	SavePipeline string `long:"save-pipeline" description:"Where to save the composed pipeline JSON"`
	ServerName   string `long:"server-name" description:"Server identifier in the generated host config"`
	Command      string `long:"command" description:"Launch command for the MCP host"`
	Args         string `long:"args" description:"Comma-separated launch args for the MCP host"`
	Cwd          string `long:"cwd" description:"Working directory for the MCP host"`
	Image        string `long:"image" description:"Docker image (docker backend)"`
}

func (c *BuildCmd) Execute(_ []string) error {
	if c.Pipeline != "" && c.SavePipeline != "" {
		return fmt.Errorf("--pipeline and --save-pipeline are mutually exclusive")
	}
	ctx := context.Background()
	s, err := composeStack(ctx, c.Pipeline, c.Presets)
	if err != nil {
		return err
	}
	if c.SavePipeline != "" {
		if err := s.Save(ctx, c.SavePipeline); err != nil {
			return err
		}
	}

	options := &stack.GenerateOptions{
		ServerName:         c.ServerName,
		Command:            c.Command,
		Cwd:                c.Cwd,
		SavePath:           c.Output,
		Image:              c.Image,
		PipelineConfigPath: pipelineRef(c.Pipeline, c.SavePipeline),
	}
	if c.Args != "" {
		options.Args = strings.Split(c.Args, ",")
	}

	built, err := s.Build(ctx, c.Backend, options)
	if err != nil {
		return err
	}
	defer built.Teardown(ctx)

	if c.Output == "" {
		data, err := built.Artifact().JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}
	return nil
}

// composeStack builds the draft stack either from a persisted pipeline or by
// folding the requested presets left to right.
func composeStack(ctx context.Context, pipeline, presets string) (*stack.Stack, error) {
	cfg, err := configSingleton()
	if err != nil {
		return nil, err
	}
	if pipeline != "" {
		return stack.Load(ctx, pipeline)
	}
	s := stack.New(cfg)
	for _, preset := range strings.Split(presets, ",") {
		preset = strings.TrimSpace(preset)
		if preset == "" {
			continue
		}
		if s, err = s.WithPreset(preset, nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// pipelineRef picks the pipeline path the generated host config should point
// at so that a host-spawned server rebuilds the same composition.
func pipelineRef(loaded, saved string) string {
	if saved != "" {
		return saved
	}
	return loaded
}
