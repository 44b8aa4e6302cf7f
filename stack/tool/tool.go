package tool

import (
	"context"
)

// Tool is the capability contract every pluggable unit implements.  A tool
// instance is owned exclusively by the stack it belongs to; the orchestrator
// drives its lifecycle strictly in insertion order.
type Tool interface {
	// TypeID returns the registry identifier of the tool type (snake_case).
	TypeID() string

	// RequiredEnvVars declares environment variables the tool needs.  A nil
	// default marks the variable as mandatory; a non-nil default is merged
	// into the stack configuration, conflicting with differing declarations
	// of the same key.
	RequiredEnvVars() map[string]*string

	// Actions returns the callables the tool exposes to the MCP host.
	Actions() []Action

	// Initialize performs first-time setup (opening connections, creating
	// files).  It is only invoked after the whole stack validated.
	Initialize(ctx context.Context) error

	// PostLoad re-establishes backends after the tool was reconstructed from
	// persisted params.  It must not repeat first-time setup side effects.
	PostLoad(ctx context.Context) error

	// Teardown releases resources.  It is invoked when a build aborts or the
	// serving surface shuts down.
	Teardown(ctx context.Context) error

	// Params returns the serializable parameters that reconstruct the tool.
	Params() map[string]interface{}
}

// Constructor builds a tool instance from its persisted params mapping.
type Constructor func(params map[string]interface{}) (Tool, error)

// Base provides no-op lifecycle defaults so that concrete tools only
// implement the hooks they need.
type Base struct{}

// RequiredEnvVars declares no requirements by default.
func (Base) RequiredEnvVars() map[string]*string { return nil }

// Initialize is a no-op by default.
func (Base) Initialize(context.Context) error { return nil }

// PostLoad is a no-op by default.
func (Base) PostLoad(context.Context) error { return nil }

// Teardown is a no-op by default.
func (Base) Teardown(context.Context) error { return nil }

// Params reports no parameters by default.
func (Base) Params() map[string]interface{} { return map[string]interface{}{} }
