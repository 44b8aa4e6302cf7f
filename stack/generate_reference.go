package stack

import (
	"context"
)

// referenceGenerator is the minimal backend: it emits a transparent document
// describing how to launch the stack and what it exposes.  It performs no
// host-side validation and is the default target for tests and scripting.
type referenceGenerator struct{}

func (g *referenceGenerator) ID() string { return "reference" }

func (g *referenceGenerator) Generate(ctx context.Context, s *Stack, options *GenerateOptions) (*Artifact, error) {
	opts := options.normalize()
	artifact := &Artifact{
		Backend: g.ID(),
		Payload: map[string]interface{}{
			"server":  opts.ServerName,
			"command": resolveCommand(s, opts),
			"args":    resolveArgs(s, opts),
			"cwd":     resolveCwd(s, opts),
			"env":     hostEnv(s, opts),
			"tools":   toolListing(s),
		},
	}
	if opts.SavePath != "" {
		if err := artifact.Save(ctx, opts.SavePath); err != nil {
			return nil, err
		}
	}
	return artifact, nil
}
