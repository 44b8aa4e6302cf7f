package remote

import (
	"context"

	"github.com/viant/jsonrpc"
	protocolclient "github.com/viant/mcp-protocol/client"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// clientHandler provides no-op implementations for all client-side RPC
// operations so that outgoing connections can be opened without the stack
// having to care about server-initiated callbacks.
type clientHandler struct {
	implements map[string]bool
}

func newClientHandler() protocolclient.Handler { return &clientHandler{} }

func (c *clientHandler) Init(ctx context.Context, capabilities *mcpschema.ClientCapabilities) {
	if len(c.implements) == 0 {
		c.implements = make(map[string]bool)
	}
	if capabilities.Elicitation != nil {
		c.implements[mcpschema.MethodElicitationCreate] = true
	}
	if capabilities.Roots != nil {
		c.implements[mcpschema.MethodRootsList] = true
	}
	if capabilities.UserInteraction != nil {
		c.implements[mcpschema.MethodInteractionCreate] = true
	}
	if capabilities.Sampling != nil {
		c.implements[mcpschema.MethodSamplingCreateMessage] = true
	}
}

func (*clientHandler) OnNotification(context.Context, *jsonrpc.Notification) {}

func (c *clientHandler) Implements(method string) bool {
	if len(c.implements) == 0 {
		c.implements = make(map[string]bool)
	}
	return c.implements[method]
}

func (*clientHandler) ListRoots(context.Context, *mcpschema.ListRootsRequestParams) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func (*clientHandler) CreateMessage(context.Context, *mcpschema.CreateMessageRequestParams) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func (*clientHandler) Elicit(context.Context, *mcpschema.ElicitRequestParams) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}

func (*clientHandler) CreateUserInteraction(context.Context, *mcpschema.CreateUserInteractionRequestParams) (*mcpschema.CreateUserInteractionResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.MethodNotFound, "not implemented", nil)
}
