package stack

import (
	"fmt"

	"github.com/MCP-Pipeline/MCPStack/stack/config"
	"github.com/MCP-Pipeline/MCPStack/stack/registry"
	"github.com/MCP-Pipeline/MCPStack/stack/tool"
)

// actionEntry records which tool owns an exposed action.
type actionEntry struct {
	owner  tool.Tool
	action tool.Action
}

// Stack is an ordered, validated composition of tools plus configuration.
// All With* operations return a new value and leave the receiver untouched;
// a built stack rejects further composition.
type Stack struct {
	config  *config.Config
	tools   []tool.Tool
	actions map[string]actionEntry

	built    bool
	artifact *Artifact

	toolReg    *registry.Registry[tool.Constructor]
	presetReg  *registry.Registry[PresetFactory]
	backendReg *registry.Registry[Generator]
}

// Option customises a stack created by New.
type Option func(*Stack)

// WithToolRegistry replaces the default process-wide tool registry, allowing
// tests to operate on isolated registries.
func WithToolRegistry(r *registry.Registry[tool.Constructor]) Option {
	return func(s *Stack) { s.toolReg = r }
}

// WithPresetRegistry replaces the default preset registry.
func WithPresetRegistry(r *registry.Registry[PresetFactory]) Option {
	return func(s *Stack) { s.presetReg = r }
}

// WithBackendRegistry replaces the default host-config backend registry.
func WithBackendRegistry(r *registry.Registry[Generator]) Option {
	return func(s *Stack) { s.backendReg = r }
}

// New creates an empty draft stack.  A nil configuration defaults to
// config.New().
func New(cfg *config.Config, options ...Option) *Stack {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Stack{
		config:     cfg.Clone(),
		actions:    map[string]actionEntry{},
		toolReg:    tool.Registry(),
		presetReg:  presetRegistry,
		backendReg: backendRegistry,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// clone produces a shallow copy with detached tool slice and action index so
// that the old and the new stack never alias mutable state.
func (s *Stack) clone() *Stack {
	n := *s
	n.tools = append([]tool.Tool(nil), s.tools...)
	actions := make(map[string]actionEntry, len(s.actions))
	for k, v := range s.actions {
		actions[k] = v
	}
	n.actions = actions
	return &n
}

// Config returns the effective configuration.  Callers must treat the
// returned object as read-only.
func (s *Stack) Config() *config.Config { return s.config }

// Tools returns the tool sequence in insertion order.  The slice is a copy
// and therefore safe for callers to modify.
func (s *Stack) Tools() []tool.Tool {
	return append([]tool.Tool(nil), s.tools...)
}

// ActionNames returns all exposed action names in insertion order.
func (s *Stack) ActionNames() []string {
	names := make([]string, 0, len(s.actions))
	for _, t := range s.tools {
		for _, a := range t.Actions() {
			names = append(names, a.Name)
		}
	}
	return names
}

// Action returns the action registered under name together with a presence
// flag.
func (s *Stack) Action(name string) (tool.Action, bool) {
	e, ok := s.actions[name]
	return e.action, ok
}

// ActionOwner returns the type identifier of the tool owning the action.
func (s *Stack) ActionOwner(name string) (string, bool) {
	e, ok := s.actions[name]
	if !ok {
		return "", false
	}
	return e.owner.TypeID(), true
}

// Built reports whether the stack composition was finalized by Build.
func (s *Stack) Built() bool { return s.built }

// Artifact returns the host-config artifact produced by Build, nil for a
// draft stack.
func (s *Stack) Artifact() *Artifact { return s.artifact }

// WithTool appends a tool instance.  The merged configuration is re-derived
// from the tool's declared environment requirements and revalidated before
// the new stack is produced; conflicts surface here, never at Build time.
func (s *Stack) WithTool(t tool.Tool) (*Stack, error) {
	if s.built {
		return nil, &FrozenError{Op: "WithTool"}
	}
	if t == nil {
		return nil, fmt.Errorf("WithTool: nil tool")
	}
	defaults := map[string]string{}
	for key, value := range t.RequiredEnvVars() {
		if value != nil {
			defaults[key] = *value
		}
	}
	merged, err := s.config.MergeEnv(defaults)
	if err != nil {
		return nil, err
	}
	if err := merged.ValidateRequired(t.TypeID(), t.RequiredEnvVars()); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, a := range t.Actions() {
		if existing, ok := s.actions[a.Name]; ok {
			return nil, &ActionConflictError{Action: a.Name, Existing: existing.owner.TypeID(), Incoming: t.TypeID()}
		}
		if seen[a.Name] {
			return nil, &ActionConflictError{Action: a.Name, Existing: t.TypeID(), Incoming: t.TypeID()}
		}
		seen[a.Name] = true
	}
	n := s.clone()
	n.config = merged
	n.tools = append(n.tools, t)
	for _, a := range t.Actions() {
		n.actions[a.Name] = actionEntry{owner: t, action: a}
	}
	return n, nil
}

// WithToolID resolves a tool type through the registry, constructs an
// instance with the supplied params and appends it.
func (s *Stack) WithToolID(id string, params map[string]interface{}) (*Stack, error) {
	if s.built {
		return nil, &FrozenError{Op: "WithToolID"}
	}
	constructor, err := s.toolReg.Resolve(id)
	if err != nil {
		return nil, err
	}
	t, err := constructor(params)
	if err != nil {
		return nil, fmt.Errorf("failed to construct tool %q: %w", id, err)
	}
	return s.WithTool(t)
}

// WithTools appends a sequence of tools, folding WithTool left to right so
// that failure reporting matches what individual calls would produce.
func (s *Stack) WithTools(tools []tool.Tool) (*Stack, error) {
	n := s
	for _, t := range tools {
		var err error
		if n, err = n.WithTool(t); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// WithConfig merges a configuration into the current one under the same
// conflict rule that governs tool requirements.
func (s *Stack) WithConfig(cfg *config.Config) (*Stack, error) {
	if s.built {
		return nil, &FrozenError{Op: "WithConfig"}
	}
	merged, err := s.config.Merge(cfg)
	if err != nil {
		return nil, err
	}
	n := s.clone()
	n.config = merged
	return n, nil
}

// WithPreset resolves a preset factory, invokes it and appends the produced
// tool sequence as if each tool had been added via WithTool.  Preset
// composition goes through the same validation path, never around it.
func (s *Stack) WithPreset(id string, options map[string]interface{}) (*Stack, error) {
	if s.built {
		return nil, &FrozenError{Op: "WithPreset"}
	}
	factory, err := s.presetReg.Resolve(id)
	if err != nil {
		return nil, err
	}
	produced, err := factory(s.config.Clone(), options)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", id, err)
	}
	n, err := s.WithConfig(produced.Config())
	if err != nil {
		return nil, err
	}
	return n.WithTools(produced.Tools())
}
