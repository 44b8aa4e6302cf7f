package preset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCP-Pipeline/MCPStack/stack"
	"github.com/MCP-Pipeline/MCPStack/stack/config"
	"github.com/MCP-Pipeline/MCPStack/stack/preset"
)

func TestStarterComposesEchoPipeline(t *testing.T) {
	cfg := config.New(config.WithDataDir(t.TempDir()))

	s, err := preset.Starter(cfg, map[string]interface{}{"suffix": "demo"})
	require.NoError(t, err)
	require.Len(t, s.Tools(), 1)
	assert.EqualValues(t, []string{"ping_demo", "echo_demo"}, s.ActionNames())

	s, err = preset.Starter(nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, []string{"ping", "echo"}, s.ActionNames())
}

func TestStarterIsDiscoverable(t *testing.T) {
	require.NoError(t, stack.Discover())

	cfg := config.New(config.WithDataDir(t.TempDir()))
	s, err := stack.New(cfg, stack.WithPresetRegistry(stack.Presets())).WithPreset("starter", map[string]interface{}{"suffix": "kit"})
	require.NoError(t, err)
	assert.EqualValues(t, []string{"ping_kit", "echo_kit"}, s.ActionNames())
}
