package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/viant/afs"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"

	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
)

// DataDirEnvKey overrides the default data directory location when set in the
// process environment.
const DataDirEnvKey = "MCPSTACK_DATA_DIR"

// Config is an immutable value holding the environment variables, path
// settings and logging options shared by every tool of a stack.  Mutating
// operations return a new instance and leave the receiver untouched.
type Config struct {
	LogLevel    string             `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	EnvVars     map[string]string  `yaml:"env_vars,omitempty" json:"env_vars,omitempty"`
	ProjectRoot string             `yaml:"project_root,omitempty" json:"project_root,omitempty"`
	DataDir     string             `yaml:"data_dir,omitempty" json:"data_dir,omitempty"`
	Server      *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
}

// Option customises a Config created by New.
type Option func(*Config)

// WithLogLevel sets the logging level (DEBUG, INFO, WARN, ERROR).
func WithLogLevel(level string) Option {
	return func(c *Config) { c.LogLevel = level }
}

// WithEnvVars replaces the whole environment variable mapping.
func WithEnvVars(env map[string]string) Option {
	return func(c *Config) {
		c.EnvVars = make(map[string]string, len(env))
		for k, v := range env {
			c.EnvVars[k] = v
		}
	}
}

// WithEnv sets a single environment variable.
func WithEnv(key, value string) Option {
	return func(c *Config) { c.EnvVars[key] = value }
}

// WithDataDir overrides the derived data directory.
func WithDataDir(dir string) Option {
	return func(c *Config) { c.DataDir = dir }
}

// WithServer sets the MCP server options used by the serving surface.
func WithServer(opts *mcp.ServerOptions) Option {
	return func(c *Config) { c.Server = opts }
}

// New builds a Config with derived defaults: the project root falls back to
// the current working directory and the data directory honours DataDirEnvKey
// before defaulting to <project_root>/mcpstack_data.
func New(options ...Option) *Config {
	c := &Config{
		LogLevel: "INFO",
		EnvVars:  map[string]string{},
	}
	for _, opt := range options {
		opt(c)
	}
	c.applyDefaults()
	return c
}

// Load reads a YAML (or JSON, which YAML subsumes) configuration document
// from a local path or URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", URL, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.EnvVars == nil {
		c.EnvVars = map[string]string{}
	}
	if c.ProjectRoot == "" {
		if wd, err := os.Getwd(); err == nil {
			c.ProjectRoot = wd
		}
	}
	if c.DataDir == "" {
		if dir := c.EnvVar(DataDirEnvKey, ""); dir != "" {
			c.DataDir = dir
		} else {
			c.DataDir = filepath.Join(c.ProjectRoot, "mcpstack_data")
		}
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	n := *c
	n.EnvVars = make(map[string]string, len(c.EnvVars))
	for k, v := range c.EnvVars {
		n.EnvVars[k] = v
	}
	return &n
}

// EnvVar returns the value of key, consulting the config mapping first and
// the process environment second.
func (c *Config) EnvVar(key, defaultValue string) string {
	if v, ok := c.EnvVars[key]; ok {
		return v
	}
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// MergeEnv returns a new Config with the supplied variables added.  A key
// already present with a different value is a conflict; last-writer-wins
// semantics are deliberately not supported.
func (c *Config) MergeEnv(env map[string]string) (*Config, error) {
	n := c.Clone()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := env[k]
		if existing, ok := n.EnvVars[k]; ok && existing != v {
			return nil, &ConflictError{Key: k, Existing: existing, Incoming: v}
		}
		n.EnvVars[k] = v
	}
	return n, nil
}

// Merge combines two configurations into a new one.  Environment variables
// follow the MergeEnv conflict rule; scalar fields of the other config win
// when set.
func (c *Config) Merge(other *Config) (*Config, error) {
	if other == nil {
		return c.Clone(), nil
	}
	n, err := c.MergeEnv(other.EnvVars)
	if err != nil {
		return nil, err
	}
	if other.LogLevel != "" {
		n.LogLevel = other.LogLevel
	}
	if other.ProjectRoot != "" {
		n.ProjectRoot = other.ProjectRoot
	}
	if other.DataDir != "" {
		n.DataDir = other.DataDir
	}
	if other.Server != nil {
		n.Server = other.Server
	}
	return n, nil
}

// ValidateRequired checks that every declared requirement is satisfied.  A
// nil default marks the variable as mandatory; a non-nil default is merged by
// the caller beforehand and therefore always present.
func (c *Config) ValidateRequired(owner string, required map[string]*string) error {
	keys := make([]string, 0, len(required))
	for k := range required {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		def := required[key]
		if def != nil {
			continue
		}
		if c.EnvVar(key, "") == "" {
			return &MissingEnvVarError{Owner: owner, Key: key}
		}
	}
	return nil
}

// EnsureDirs creates the data directory tree.  Directory layout mirrors the
// stack conventions: a databases area for embedded stores and a raw files
// area for bulk payloads.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.DataDir, c.DatabasesDir(), c.RawFilesDir()} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}
	logging.Debug("config", "ensured data directories under %s", c.DataDir)
	return nil
}

// DatabasesDir returns the directory tools should use for embedded databases.
func (c *Config) DatabasesDir() string { return filepath.Join(c.DataDir, "databases") }

// RawFilesDir returns the directory tools should use for raw file payloads.
func (c *Config) RawFilesDir() string { return filepath.Join(c.DataDir, "raw_files") }
