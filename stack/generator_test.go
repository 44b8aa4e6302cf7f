package stack_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCP-Pipeline/MCPStack/stack"
	"github.com/MCP-Pipeline/MCPStack/stack/config"
	"github.com/MCP-Pipeline/MCPStack/stack/tool"
	"github.com/MCP-Pipeline/MCPStack/stack/tools/echo"
)

func echoPair(t *testing.T) *stack.Stack {
	t.Helper()
	s, err := stack.New(testConfig(t)).WithTools([]tool.Tool{
		echo.NewWithParams(echo.Params{Suffix: "one"}),
		echo.NewWithParams(echo.Params{Suffix: "two"}),
	})
	require.NoError(t, err)
	return s
}

func TestReferenceBackendListsEveryToolInstance(t *testing.T) {
	built, err := echoPair(t).Build(context.Background(), "reference", &stack.GenerateOptions{
		Command:            "/bin/sh",
		PipelineConfigPath: "/tmp/pipeline.json",
	})
	require.NoError(t, err)
	defer built.Teardown(context.Background())

	payload := built.Artifact().Payload
	assert.EqualValues(t, stack.DefaultServerName, payload["server"])
	assert.EqualValues(t, "/bin/sh", payload["command"])
	assert.EqualValues(t, []string{"serve", "--pipeline", "/tmp/pipeline.json"}, payload["args"])

	env, ok := payload["env"].(map[string]string)
	require.True(t, ok)
	assert.EqualValues(t, "/tmp/pipeline.json", env[stack.EnvConfigPath])

	tools, ok := payload["tools"].([]interface{})
	require.True(t, ok)
	require.Len(t, tools, 2)
	first := tools[0].(map[string]interface{})
	assert.EqualValues(t, "echo", first["type"])
	assert.EqualValues(t, []string{"ping_one", "echo_one"}, first["actions"])
}

func TestReferenceBackendArgsFromEnvironment(t *testing.T) {
	cfg := config.New(
		config.WithDataDir(t.TempDir()),
		config.WithEnv(stack.EnvArgs, "serve,--pipeline,/srv/pipeline.json"),
	)
	s, err := stack.New(cfg).WithTool(echo.NewWithParams(echo.Params{}))
	require.NoError(t, err)

	built, err := s.Build(context.Background(), "reference", nil)
	require.NoError(t, err)
	defer built.Teardown(context.Background())

	assert.EqualValues(t, []string{"serve", "--pipeline", "/srv/pipeline.json"},
		built.Artifact().Payload["args"])
}

func TestClaudeBackendWritesServerEntry(t *testing.T) {
	cwd := t.TempDir()
	savePath := filepath.Join(t.TempDir(), "claude.json")

	built, err := echoPair(t).Build(context.Background(), "claude", &stack.GenerateOptions{
		ServerName: "mystack",
		Command:    "/bin/sh",
		Cwd:        cwd,
		SavePath:   savePath,
	})
	require.NoError(t, err)
	defer built.Teardown(context.Background())

	data, err := os.ReadFile(savePath)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))

	servers, ok := payload["mcpServers"].(map[string]interface{})
	require.True(t, ok)
	server, ok := servers["mystack"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, "/bin/sh", server["command"])
	assert.EqualValues(t, cwd, server["cwd"])
}

func TestClaudeBackendRejectsUnknownCommand(t *testing.T) {
	_, err := echoPair(t).Build(context.Background(), "claude", &stack.GenerateOptions{
		Command: "definitely-not-on-path-xyz",
		Cwd:     t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found on PATH")
}

func TestDockerBackendComposesRunArguments(t *testing.T) {
	built, err := echoPair(t).Build(context.Background(), "docker", &stack.GenerateOptions{
		Image:   "ghcr.io/acme/mcpstack:1.2",
		Volumes: []string{"/data:/data"},
		Ports:   []string{"5000:5000"},
		Network: "host",
	})
	require.NoError(t, err)
	defer built.Teardown(context.Background())

	servers := built.Artifact().Payload["mcpServers"].(map[string]interface{})
	server := servers[stack.DefaultServerName].(map[string]interface{})
	assert.EqualValues(t, "docker", server["command"])
	assert.EqualValues(t, []string{
		"run", "-i", "--rm",
		"-v", "/data:/data",
		"-p", "5000:5000",
		"--network", "host",
		"ghcr.io/acme/mcpstack:1.2",
	}, server["args"])
}

func TestDockerBackendRejectsMalformedImage(t *testing.T) {
	_, err := echoPair(t).Build(context.Background(), "docker", &stack.GenerateOptions{
		Image: "Bad Image!!",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid docker image name")
}

func TestUniversalBackendExportsComposition(t *testing.T) {
	cfg := config.New(config.WithDataDir(t.TempDir()), config.WithLogLevel("debug"))
	s, err := stack.New(cfg).WithTool(echo.NewWithParams(echo.Params{}))
	require.NoError(t, err)

	built, err := s.Build(context.Background(), "universal", nil)
	require.NoError(t, err)
	defer built.Teardown(context.Background())

	payload := built.Artifact().Payload
	confSection, ok := payload["config"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, "debug", confSection["log_level"])
	assert.EqualValues(t, cfg.DataDir, confSection["data_dir"])
	assert.EqualValues(t, []string{"ping", "echo"}, payload["actions"])
}

func TestArtifactSaveRoundTrip(t *testing.T) {
	location := filepath.Join(t.TempDir(), "artifact.json")
	artifact := &stack.Artifact{
		Backend: "reference",
		Payload: map[string]interface{}{"server": "mcpstack"},
	}
	require.NoError(t, artifact.Save(context.Background(), location))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.EqualValues(t, "mcpstack", payload["server"])
}
