package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCP-Pipeline/MCPStack/internal/conv"
	"github.com/MCP-Pipeline/MCPStack/stack/config"
)

func TestConfigDefaults(t *testing.T) {
	cfg := config.New()
	assert.EqualValues(t, "INFO", cfg.LogLevel)
	assert.NotEmpty(t, cfg.ProjectRoot)
	assert.EqualValues(t, filepath.Join(cfg.ProjectRoot, "mcpstack_data"), cfg.DataDir)
}

func TestConfigCloneIsDetached(t *testing.T) {
	cfg := config.New(config.WithEnv("A", "1"))
	clone := cfg.Clone()
	clone.EnvVars["A"] = "2"
	clone.EnvVars["B"] = "3"

	assert.EqualValues(t, "1", cfg.EnvVars["A"])
	assert.NotContains(t, cfg.EnvVars, "B")
}

func TestConfigEnvVarPrecedence(t *testing.T) {
	t.Setenv("MCPSTACK_TEST_PRECEDENCE", "from-process")
	cfg := config.New(config.WithEnv("MCPSTACK_TEST_PRECEDENCE", "from-config"))

	assert.EqualValues(t, "from-config", cfg.EnvVar("MCPSTACK_TEST_PRECEDENCE", ""))
	assert.EqualValues(t, "from-process", config.New().EnvVar("MCPSTACK_TEST_PRECEDENCE", ""))
	assert.EqualValues(t, "fallback", config.New().EnvVar("MCPSTACK_TEST_UNSET", "fallback"))
}

func TestConfigMergeEnvConflict(t *testing.T) {
	cfg := config.New(config.WithEnv("API_KEY", "abc"))

	merged, err := cfg.MergeEnv(map[string]string{"API_KEY": "abc", "EXTRA": "1"})
	require.NoError(t, err)
	assert.EqualValues(t, "1", merged.EnvVars["EXTRA"])
	assert.NotContains(t, cfg.EnvVars, "EXTRA")

	_, err = cfg.MergeEnv(map[string]string{"API_KEY": "different"})
	var conflict *config.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.EqualValues(t, "API_KEY", conflict.Key)
	assert.EqualValues(t, "abc", conflict.Existing)
	assert.EqualValues(t, "different", conflict.Incoming)
}

func TestConfigMergeScalarsOtherWins(t *testing.T) {
	a := config.New(config.WithLogLevel("INFO"), config.WithEnv("A", "1"))
	b := config.New(config.WithLogLevel("debug"), config.WithEnv("B", "2"))

	merged, err := a.Merge(b)
	require.NoError(t, err)
	assert.EqualValues(t, "debug", merged.LogLevel)
	assert.EqualValues(t, "1", merged.EnvVars["A"])
	assert.EqualValues(t, "2", merged.EnvVars["B"])

	same, err := a.Merge(nil)
	require.NoError(t, err)
	assert.EqualValues(t, "INFO", same.LogLevel)
}

func TestConfigValidateRequired(t *testing.T) {
	cfg := config.New(config.WithEnv("PRESENT", "yes"))

	require.NoError(t, cfg.ValidateRequired("tool-a", map[string]*string{
		"PRESENT":     nil,
		"HAS_DEFAULT": conv.Pointer("fallback"),
	}))

	err := cfg.ValidateRequired("tool-a", map[string]*string{"MCPSTACK_TEST_REQUIRED_ABSENT": nil})
	var missing *config.MissingEnvVarError
	require.ErrorAs(t, err, &missing)
	assert.EqualValues(t, "tool-a", missing.Owner)
	assert.EqualValues(t, "MCPSTACK_TEST_REQUIRED_ABSENT", missing.Key)
}

func TestConfigEnsureDirs(t *testing.T) {
	cfg := config.New(config.WithDataDir(filepath.Join(t.TempDir(), "data")))
	require.NoError(t, cfg.EnsureDirs())

	for _, dir := range []string{cfg.DataDir, cfg.DatabasesDir(), cfg.RawFilesDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestConfigLoadYAML(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	document := `log_level: debug
env_vars:
  API_KEY: abc
data_dir: ` + filepath.Join(t.TempDir(), "custom") + `
`
	require.NoError(t, os.WriteFile(location, []byte(document), 0o644))

	cfg, err := config.Load(context.Background(), location)
	require.NoError(t, err)
	assert.EqualValues(t, "debug", cfg.LogLevel)
	assert.EqualValues(t, "abc", cfg.EnvVars["API_KEY"])
	assert.NotEmpty(t, cfg.ProjectRoot)
}

func TestConfigDataDirFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.DataDirEnvKey, dir)
	cfg := config.New()
	assert.EqualValues(t, dir, cfg.DataDir)
}
