package tool

import (
	"reflect"

	"github.com/viant/x"

	"github.com/MCP-Pipeline/MCPStack/stack/registry"
)

// defaultRegistry is the process-wide tool registry.  Tests construct
// isolated registries via registry.New and pass them to the stack builder.
var defaultRegistry = registry.New[Constructor]("tool")

// Registry returns the process-wide tool registry.
func Registry() *registry.Registry[Constructor] { return defaultRegistry }

// Provide queues a tool type for discovery.  Plugin packages call Provide
// from their init function; the entry becomes resolvable once Discover ran.
func Provide(id string, constructor Constructor) {
	defaultRegistry.AddSource(func() []registry.Entry[Constructor] {
		return []registry.Entry[Constructor]{{ID: id, Value: constructor}}
	})
}

// Discover populates the default registry from all provided tool types.
// Idempotent; safe to call from every entry path.
func Discover() error { return defaultRegistry.Discover() }

// paramTypes holds the Go types backing each tool's params mapping so that
// generic callers (CLI inspection, schema generation) can recover the typed
// representation from a type identifier.
var paramTypes = x.NewRegistry()

// RegisterParamsType registers the params struct type of a tool.
func RegisterParamsType(t reflect.Type, options ...x.Option) {
	paramTypes.Register(x.NewType(t, options...))
}

// ParamsType returns the registered params type for a tool identifier, or
// nil when the tool did not register one.
func ParamsType(id string) *x.Type {
	return paramTypes.Lookup(id)
}
