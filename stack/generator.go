package stack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/viant/afs"

	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
)

// Environment variables consulted by the generator backends when no explicit
// option is supplied.
const (
	EnvConfigPath = "MCPSTACK_CONFIG_PATH"
	EnvCommand    = "MCPSTACK_COMMAND"
	EnvArgs       = "MCPSTACK_ARGS"
	EnvCwd        = "MCPSTACK_CWD"
)

// DefaultServerName identifies the stack in generated host configurations.
const DefaultServerName = "mcpstack"

// Artifact is the pure output value of a generator backend.  It holds no
// back-reference to the stack it was generated from.
type Artifact struct {
	Backend string                 `json:"backend"`
	Payload map[string]interface{} `json:"payload"`
}

// JSON renders the artifact payload as an indented document.
func (a *Artifact) JSON() ([]byte, error) {
	return json.MarshalIndent(a.Payload, "", "  ")
}

// Save writes the artifact payload to a local path or URL.
func (a *Artifact) Save(ctx context.Context, URL string) error {
	data, err := a.JSON()
	if err != nil {
		return err
	}
	fs := afs.New()
	if err := fs.Upload(ctx, URL, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save %s artifact to %q: %w", a.Backend, URL, err)
	}
	logging.Info("hostcfg", "saved %s artifact to %s", a.Backend, URL)
	return nil
}

// GenerateOptions carries per-build knobs for the generator backends.  Every
// field is optional; backends resolve sensible defaults from the stack
// configuration and the process environment.
type GenerateOptions struct {
	ServerName         string
	Command            string
	Args               []string
	Cwd                string
	PipelineConfigPath string
	SavePath           string

	// Docker backend specific.
	Image           string
	Volumes         []string
	Ports           []string
	Network         string
	ExtraDockerArgs []string
}

func (o *GenerateOptions) normalize() *GenerateOptions {
	n := &GenerateOptions{}
	if o != nil {
		*n = *o
	}
	if n.ServerName == "" {
		n.ServerName = DefaultServerName
	}
	return n
}

// Generator translates a built tool set into a host-specific configuration
// artifact.  Implementations may only read tool metadata and the action
// index; they must not mutate the stack.
type Generator interface {
	ID() string
	Generate(ctx context.Context, s *Stack, options *GenerateOptions) (*Artifact, error)
}

func init() {
	for _, g := range []Generator{
		&referenceGenerator{},
		&claudeGenerator{},
		&dockerGenerator{},
		&universalGenerator{},
	} {
		if err := RegisterBackend(g); err != nil {
			panic(err)
		}
	}
}

// hostEnv copies the stack environment and injects the pipeline config path
// so that a host-spawned server can rebuild the same pipeline.
func hostEnv(s *Stack, options *GenerateOptions) map[string]string {
	env := make(map[string]string, len(s.Config().EnvVars)+1)
	for k, v := range s.Config().EnvVars {
		env[k] = v
	}
	if options.PipelineConfigPath != "" {
		env[EnvConfigPath] = options.PipelineConfigPath
	}
	return env
}

// toolListing summarises the composed tools: one entry per tool instance in
// insertion order with its exposed action names.
func toolListing(s *Stack) []interface{} {
	listing := make([]interface{}, 0, len(s.tools))
	for _, t := range s.tools {
		actions := make([]string, 0, len(t.Actions()))
		for _, a := range t.Actions() {
			actions = append(actions, a.Name)
		}
		listing = append(listing, map[string]interface{}{
			"type":    t.TypeID(),
			"actions": actions,
		})
	}
	return listing
}

// resolveCommand picks the host launch command: explicit option first, then
// the MCPSTACK_COMMAND env var, then the running binary.
func resolveCommand(s *Stack, options *GenerateOptions) string {
	if options.Command != "" {
		return options.Command
	}
	if cmd := s.Config().EnvVar(EnvCommand, ""); cmd != "" {
		return cmd
	}
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	return DefaultServerName
}

// resolveCwd picks the host working directory: explicit option first, then
// the MCPSTACK_CWD env var, then the current directory.
func resolveCwd(s *Stack, options *GenerateOptions) string {
	if options.Cwd != "" {
		return options.Cwd
	}
	if cwd := s.Config().EnvVar(EnvCwd, ""); cwd != "" {
		return cwd
	}
	wd, _ := os.Getwd()
	return wd
}

// resolveArgs picks the host launch arguments: explicit option first, then
// the comma-separated MCPSTACK_ARGS env var.  The default boots the serve
// path against the persisted pipeline when one is referenced.
func resolveArgs(s *Stack, options *GenerateOptions) []string {
	if options.Args != nil {
		return append([]string(nil), options.Args...)
	}
	if raw := s.Config().EnvVar(EnvArgs, ""); raw != "" {
		return strings.Split(raw, ",")
	}
	args := []string{"serve"}
	if options.PipelineConfigPath != "" {
		args = append(args, "--pipeline", options.PipelineConfigPath)
	}
	return args
}
