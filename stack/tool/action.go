package tool

import (
	"context"
	"fmt"

	mcpschema "github.com/viant/mcp-protocol/schema"
)

// Handler executes one action with already-decoded arguments.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Action is a named callable a tool exposes for host invocation.
type Action struct {
	Name        string
	Description string
	InputSchema mcpschema.ToolInputSchema
	Handler     Handler
}

// SchemaFor derives a tool input schema from a sample parameter struct.  An
// empty or nil sample yields a bare object schema.
func SchemaFor(sample interface{}) (mcpschema.ToolInputSchema, error) {
	var schema mcpschema.ToolInputSchema
	if sample != nil {
		if err := schema.Load(sample); err != nil {
			return schema, fmt.Errorf("failed to build input schema: %w", err)
		}
	}
	if schema.Type == "" {
		schema.Type = "object"
	}
	return schema, nil
}
