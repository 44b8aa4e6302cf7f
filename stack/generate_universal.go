package stack

import (
	"context"
)

// universalGenerator dumps the whole composition in a host-agnostic shape so
// that arbitrary integrations can derive their own bootstrap configuration.
type universalGenerator struct{}

func (g *universalGenerator) ID() string { return "universal" }

func (g *universalGenerator) Generate(ctx context.Context, s *Stack, options *GenerateOptions) (*Artifact, error) {
	opts := options.normalize()
	cfg := s.Config()
	artifact := &Artifact{
		Backend: g.ID(),
		Payload: map[string]interface{}{
			"server": opts.ServerName,
			"config": map[string]interface{}{
				"log_level":    cfg.LogLevel,
				"project_root": cfg.ProjectRoot,
				"data_dir":     cfg.DataDir,
			},
			"env":     hostEnv(s, opts),
			"tools":   toolListing(s),
			"actions": s.ActionNames(),
		},
	}
	if opts.SavePath != "" {
		if err := artifact.Save(ctx, opts.SavePath); err != nil {
			return nil, err
		}
	}
	return artifact, nil
}
