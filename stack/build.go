package stack

import (
	"context"

	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
	"github.com/MCP-Pipeline/MCPStack/stack/tool"
)

// Build finalizes the composition.  Lifecycle runs in two disjoint phases:
// validation over the whole tool set first, then Initialize on every tool in
// insertion order.  Any initialization failure tears down the already
// initialized prefix before the error propagates, so a partially-initialized
// stack can never leak out.  The returned stack carries the artifact produced
// by the selected backend; the receiver stays a draft.
func (s *Stack) Build(ctx context.Context, backendID string, options *GenerateOptions) (*Stack, error) {
	if s.built {
		return nil, &FrozenError{Op: "Build"}
	}
	if len(s.tools) == 0 {
		return nil, ErrNoTools
	}
	for _, t := range s.tools {
		if err := s.config.ValidateRequired(t.TypeID(), t.RequiredEnvVars()); err != nil {
			return nil, err
		}
	}
	// Resolve the backend before touching any tool lifecycle so that a typo
	// in the backend id cannot leave connections half-open.
	generator, err := s.backendReg.Resolve(backendID)
	if err != nil {
		return nil, err
	}
	if err := s.config.EnsureDirs(); err != nil {
		return nil, err
	}

	n := s.clone()
	initialized := make([]tool.Tool, 0, len(n.tools))
	for _, t := range n.tools {
		if err := t.Initialize(ctx); err != nil {
			teardownAll(ctx, initialized)
			return nil, &InitError{Tool: t.TypeID(), Err: err}
		}
		initialized = append(initialized, t)
		logging.Debug("stack", "initialized tool %q", t.TypeID())
	}

	artifact, err := generator.Generate(ctx, n, options)
	if err != nil {
		teardownAll(ctx, initialized)
		return nil, err
	}
	n.built = true
	n.artifact = artifact
	logging.Info("stack", "built stack with %d tools using backend %q", len(n.tools), backendID)
	return n, nil
}

// Teardown releases every tool's resources in reverse insertion order.
// Failures are downgraded to logged warnings so that cleanup never masks the
// original cause of a shutdown.
func (s *Stack) Teardown(ctx context.Context) {
	teardownAll(ctx, s.tools)
}

func teardownAll(ctx context.Context, tools []tool.Tool) {
	for i := len(tools) - 1; i >= 0; i-- {
		if err := tools[i].Teardown(ctx); err != nil {
			logging.Warn("stack", "teardown of tool %q failed: %v", tools[i].TypeID(), err)
		}
	}
}
