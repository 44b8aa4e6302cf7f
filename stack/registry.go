package stack

import (
	"github.com/MCP-Pipeline/MCPStack/stack/config"
	"github.com/MCP-Pipeline/MCPStack/stack/registry"
	"github.com/MCP-Pipeline/MCPStack/stack/tool"
)

// PresetFactory produces a pre-wired stack from a configuration and free-form
// options.  Factories are stateless and owned by the preset registry.
type PresetFactory func(cfg *config.Config, options map[string]interface{}) (*Stack, error)

// presetRegistry is the process-wide preset registry.
var presetRegistry = registry.New[PresetFactory]("preset")

// Presets returns the process-wide preset registry.
func Presets() *registry.Registry[PresetFactory] { return presetRegistry }

// ProvidePreset queues a preset for discovery, mirroring tool.Provide.
func ProvidePreset(id string, factory PresetFactory) {
	presetRegistry.AddSource(func() []registry.Entry[PresetFactory] {
		return []registry.Entry[PresetFactory]{{ID: id, Value: factory}}
	})
}

// backendRegistry holds the host-config generator strategies.  The built-in
// backends register during package initialization; external backends are
// added via RegisterBackend.
var backendRegistry = registry.New[Generator]("backend")

// Backends returns the process-wide backend registry.
func Backends() *registry.Registry[Generator] { return backendRegistry }

// RegisterBackend adds a host-config generator under its own identifier.
func RegisterBackend(g Generator, options ...registry.RegisterOption) error {
	return backendRegistry.Register(g.ID(), g, options...)
}

// Discover populates the process-wide tool and preset registries from all
// plugin packages linked into the binary.  Idempotent.
func Discover() error {
	if err := tool.Discover(); err != nil {
		return err
	}
	return presetRegistry.Discover()
}
