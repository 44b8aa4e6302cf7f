package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	mcp "github.com/viant/mcp"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
	"github.com/viant/x"

	"github.com/MCP-Pipeline/MCPStack/internal/conv"
	"github.com/MCP-Pipeline/MCPStack/pkg/logging"
	"github.com/MCP-Pipeline/MCPStack/stack/tool"
)

// TypeID identifies the remote MCP tool type.
const TypeID = "remote_mcp"

// Params configures a remote endpoint.  Imported action names are prefixed
// with Name so that several endpoints never collide in the action index.
type Params struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Transport string `json:"transport,omitempty"`
	Version   string `json:"version,omitempty"`
}

// Dialer opens a client connection to the configured endpoint.  Tests inject
// in-process clients through NewWithDialer.
type Dialer func(ctx context.Context, params Params) (mcpclient.Interface, error)

// Tool wraps an external MCP endpoint as a pluggable tool: on initialization
// it imports the remote tool list and proxies each entry as a local action.
type Tool struct {
	tool.Base
	params  Params
	dial    Dialer
	client  mcpclient.Interface
	actions []tool.Action
}

// New constructs a remote tool from its persisted params using the default
// HTTP/SSE dialer.
func New(params map[string]interface{}) (tool.Tool, error) {
	var p Params
	if err := conv.Convert(params, &p); err != nil {
		return nil, fmt.Errorf("remote_mcp: invalid params: %w", err)
	}
	return NewWithDialer(p, dialHTTP)
}

// NewWithDialer constructs a remote tool with a custom connection strategy.
func NewWithDialer(params Params, dial Dialer) (*Tool, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("remote_mcp: name is required")
	}
	return &Tool{params: params, dial: dial}, nil
}

func dialHTTP(ctx context.Context, params Params) (mcpclient.Interface, error) {
	if params.URL == "" {
		return nil, fmt.Errorf("remote_mcp %q: url is required", params.Name)
	}
	transportType := params.Transport
	if transportType == "" {
		transportType = "sse"
	}
	options := &mcp.ClientOptions{
		Name:    params.Name,
		Version: params.Version,
		Transport: mcp.ClientTransport{
			Type:                transportType,
			ClientTransportHTTP: mcp.ClientTransportHTTP{URL: params.URL},
		},
	}
	return mcp.NewClient(newClientHandler(), options)
}

// TypeID implements tool.Tool.
func (t *Tool) TypeID() string { return TypeID }

// Params implements tool.Tool.
func (t *Tool) Params() map[string]interface{} {
	m, _ := conv.ToMap(t.params)
	return m
}

// Actions returns the imported remote actions.  The list is empty until
// Initialize or PostLoad connected the endpoint; it is rebuilt on reconnect.
func (t *Tool) Actions() []tool.Action {
	return append([]tool.Action(nil), t.actions...)
}

// Initialize connects the endpoint and imports its tool list.
func (t *Tool) Initialize(ctx context.Context) error {
	return t.connect(ctx)
}

// PostLoad re-establishes the connection from persisted params.  Importing
// the remote tool list has no first-time side effects, so reconnecting reuses
// the initialization path.
func (t *Tool) PostLoad(ctx context.Context) error {
	return t.connect(ctx)
}

func (t *Tool) connect(ctx context.Context) error {
	cli, err := t.dial(ctx, t.params)
	if err != nil {
		return fmt.Errorf("remote_mcp %q: connect: %w", t.params.Name, err)
	}
	t.client = cli

	// Fetch all available tools (paging supported).
	tools := make([]mcpschema.Tool, 0)
	var cursor *string
	for {
		res, err := cli.ListTools(ctx, cursor)
		if err != nil {
			return fmt.Errorf("remote_mcp %q: list tools: %w", t.params.Name, err)
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}

	t.actions = t.actions[:0]
	for i := range tools {
		t.actions = append(t.actions, t.proxyAction(&tools[i]))
	}
	logging.Info("remote_mcp", "imported %d tools from %q", len(t.actions), t.params.Name)
	return nil
}

// proxyAction turns one remote tool descriptor into a local action whose
// handler forwards the call over the client connection.
func (t *Tool) proxyAction(remote *mcpschema.Tool) tool.Action {
	name := t.params.Name + "_" + remote.Name
	return tool.Action{
		Name:        name,
		Description: conv.Dereference(remote.Description),
		InputSchema: remote.InputSchema,
		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
			params := &mcpschema.CallToolRequestParams{
				Name:      remote.Name,
				Arguments: mcpschema.CallToolRequestParamsArguments(args),
			}
			res, err := t.client.CallTool(ctx, params)
			if err != nil {
				return nil, err
			}
			if len(res.Content) == 1 && res.Content[0].Type == "text" {
				return res.Content[0].Text, nil
			}
			data, err := json.Marshal(res.Content)
			if err != nil {
				return nil, err
			}
			return string(data), nil
		},
	}
}

func init() {
	tool.Provide(TypeID, New)
	tool.RegisterParamsType(reflect.TypeOf(Params{}), x.WithName(TypeID))
}
