package stack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	mcp "github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	mcplogger "github.com/viant/mcp-protocol/logger"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"

	"github.com/MCP-Pipeline/MCPStack/internal/conv"
	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
	"github.com/MCP-Pipeline/MCPStack/stack/tool"
)

// NewHandler returns an MCP server implementer exposing the stack's action
// index.  Every incoming connection reuses the same registrations; actions
// are wired once per stack rather than per connection.
func (s *Stack) NewHandler(ctx context.Context, notifier transport.Notifier, l mcplogger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, t := range s.tools {
		for _, a := range t.Actions() {
			description := a.Description
			entry := &serverproto.ToolEntry{
				Metadata: mcpschema.Tool{
					Name:        a.Name,
					Description: conv.Pointer(description),
					InputSchema: a.InputSchema,
				},
				Handler: actionHandler(a),
			}
			impl.Registry.RegisterTool(entry)
		}
	}
	return impl, nil
}

// actionHandler adapts an action callable to the MCP tool handler contract:
// arguments arrive as a decoded JSON object, results are rendered as text
// content and action failures become tool-level errors rather than protocol
// errors.
func actionHandler(a tool.Action) func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	return func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		args := map[string]interface{}(request.Params.Arguments)
		out, err := a.Handler(ctx, args)
		res := &mcpschema.CallToolResult{}
		if err != nil {
			res.IsError = conv.Pointer(true)
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Type: "text",
				Text: err.Error(),
			})
			return res, nil
		}
		var data []byte
		switch actual := out.(type) {
		case nil:
		case string:
			data = []byte(actual)
		case []byte:
			data = actual
		default:
			data, _ = json.Marshal(actual)
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Type: "text",
			Text: string(data),
		})
		return res, nil
	}
}

// Run hands control to the MCP server runtime, exposing every action of the
// built stack until the context is cancelled.  Tools are torn down on exit.
func (s *Stack) Run(ctx context.Context) error {
	if !s.built {
		return ErrNotBuilt
	}
	server, err := mcp.NewServer(s.NewHandler, s.config.Server)
	if err != nil {
		return err
	}
	httpServer := server.HTTP(ctx, "")
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	logging.Info("stack", "MCP server listening on %s", httpServer.Addr)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = httpServer.Close()
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}
	s.Teardown(context.WithoutCancel(ctx))
	logging.Info("stack", "MCP server shutdown complete")
	return runErr
}
