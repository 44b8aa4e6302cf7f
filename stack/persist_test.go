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
	"github.com/MCP-Pipeline/MCPStack/stack/registry"
	"github.com/MCP-Pipeline/MCPStack/stack/tool"
	"github.com/MCP-Pipeline/MCPStack/stack/tools/echo"
)

func TestStackSaveLoadRoundTrip(t *testing.T) {
	require.NoError(t, stack.Discover())
	ctx := context.Background()
	cfg := config.New(
		config.WithDataDir(t.TempDir()),
		config.WithLogLevel("debug"),
		config.WithEnv("SHARED_KEY", "shared"),
	)

	first, err := echo.New(map[string]interface{}{"suffix": "one", "greeting": "hi"})
	require.NoError(t, err)
	second, err := echo.New(map[string]interface{}{"suffix": "two"})
	require.NoError(t, err)

	s, err := stack.New(cfg).WithTools([]tool.Tool{first, second})
	require.NoError(t, err)

	location := filepath.Join(t.TempDir(), "pipeline.json")
	require.NoError(t, s.Save(ctx, location))

	loaded, err := stack.Load(ctx, location)
	require.NoError(t, err)

	assert.False(t, loaded.Built())
	assert.EqualValues(t, s.ActionNames(), loaded.ActionNames())
	assert.EqualValues(t, "debug", loaded.Config().LogLevel)
	assert.EqualValues(t, "shared", loaded.Config().EnvVars["SHARED_KEY"])

	tools := loaded.Tools()
	require.Len(t, tools, 2)
	assert.EqualValues(t, "echo", tools[0].TypeID())
	assert.EqualValues(t, "hi", tools[0].Params()["greeting"])
	assert.EqualValues(t, "two", tools[1].Params()["suffix"])
}

func TestStackSaveDocumentShape(t *testing.T) {
	ctx := context.Background()
	one, err := echo.New(map[string]interface{}{"suffix": "one"})
	require.NoError(t, err)

	s, err := stack.New(config.New(config.WithDataDir(t.TempDir()))).WithTool(one)
	require.NoError(t, err)

	location := filepath.Join(t.TempDir(), "pipeline.json")
	require.NoError(t, s.Save(ctx, location))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "config")
	tools, ok := doc["tools"].([]interface{})
	require.True(t, ok)
	require.Len(t, tools, 1)
	entry := tools[0].(map[string]interface{})
	assert.EqualValues(t, "echo", entry["type"])
	params, ok := entry["params"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, "one", params["suffix"])
}

func TestStackLoadMalformedDocument(t *testing.T) {
	location := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(location, []byte("{not json"), 0o644))

	_, err := stack.Load(context.Background(), location)
	var format *stack.FormatError
	require.ErrorAs(t, err, &format)
	assert.EqualValues(t, location, format.Source)
}

func TestStackLoadUnknownToolType(t *testing.T) {
	doc := stack.Document{
		Config: config.New(config.WithDataDir(t.TempDir())),
		Tools:  []stack.ToolDocument{{Type: "no-such-tool"}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	location := filepath.Join(t.TempDir(), "pipeline.json")
	require.NoError(t, os.WriteFile(location, data, 0o644))

	_, err = stack.Load(context.Background(), location)
	var notFound *registry.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.EqualValues(t, "no-such-tool", notFound.ID)
}

func TestStackLoadRunsPostLoadNotInitialize(t *testing.T) {
	reg := registry.New[tool.Constructor]("tool")
	var created []*fakeTool
	require.NoError(t, reg.Register("scripted", func(params map[string]interface{}) (tool.Tool, error) {
		f := &fakeTool{id: "scripted", actions: []string{"s1"}}
		created = append(created, f)
		return f, nil
	}))

	doc := stack.Document{
		Config: config.New(config.WithDataDir(t.TempDir())),
		Tools:  []stack.ToolDocument{{Type: "scripted"}},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	location := filepath.Join(t.TempDir(), "pipeline.json")
	require.NoError(t, os.WriteFile(location, data, 0o644))

	loaded, err := stack.Load(context.Background(), location, stack.WithToolRegistry(reg))
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.EqualValues(t, 1, created[0].postLoadCalls)
	assert.Zero(t, created[0].initCalls)
	assert.False(t, loaded.Built())
}
