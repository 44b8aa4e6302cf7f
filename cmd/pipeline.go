package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MCP-Pipeline/MCPStack/stack"
)

// PipelineCmd composes a new pipeline or extends an existing one with a tool
// and persists the result.  Validation runs at composition time, so an
// invalid extension never reaches disk.
type PipelineCmd struct {
	Pipeline string `short:"p" long:"pipeline" description:"Existing pipeline JSON path to extend"`
	ToolID   string `short:"t" long:"tool" description:"Tool type identifier to append" required:"yes"`
	Params   string `long:"params" description:"Inline JSON params for the tool"`
	Output   string `short:"o" long:"output" description:"Where to save the pipeline" required:"yes"`
}

func (c *PipelineCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	ctx := context.Background()

	var s *stack.Stack
	if c.Pipeline != "" {
		if s, err = stack.Load(ctx, c.Pipeline); err != nil {
			return err
		}
	} else {
		s = stack.New(cfg)
	}

	var params map[string]interface{}
	if c.Params != "" {
		if err := json.Unmarshal([]byte(c.Params), &params); err != nil {
			return fmt.Errorf("invalid --params JSON: %w", err)
		}
	}
	if s, err = s.WithToolID(c.ToolID, params); err != nil {
		return err
	}
	if err := s.Save(ctx, c.Output); err != nil {
		return err
	}
	fmt.Printf("pipeline with %d tools saved to %s\n", len(s.Tools()), c.Output)
	return nil
}
