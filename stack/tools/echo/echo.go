package echo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/x"

	"github.com/MCP-Pipeline/MCPStack/internal/conv"
	"github.com/MCP-Pipeline/MCPStack/stack/tool"
)

// TypeID identifies the echo tool in the registry and in persisted pipelines.
const TypeID = "echo"

// Params configures one echo instance.  Suffix disambiguates action names so
// that several instances can coexist in the same stack.
type Params struct {
	Suffix   string `json:"suffix,omitempty"`
	Greeting string `json:"greeting,omitempty"`
}

type echoArgs struct {
	Message string `json:"message"`
}

// Tool is a minimal built-in tool exposing a ping and an echo action.  It
// doubles as the reference implementation of the tool contract.
type Tool struct {
	tool.Base
	params Params
}

// New constructs an echo tool from its persisted params.
func New(params map[string]interface{}) (tool.Tool, error) {
	t := &Tool{}
	if err := conv.Convert(params, &t.params); err != nil {
		return nil, fmt.Errorf("echo: invalid params: %w", err)
	}
	if t.params.Greeting == "" {
		t.params.Greeting = "pong"
	}
	return t, nil
}

// NewWithParams constructs an echo tool from typed params.
func NewWithParams(params Params) *Tool {
	t := &Tool{params: params}
	if t.params.Greeting == "" {
		t.params.Greeting = "pong"
	}
	return t
}

// TypeID implements tool.Tool.
func (t *Tool) TypeID() string { return TypeID }

// Params implements tool.Tool.
func (t *Tool) Params() map[string]interface{} {
	m, _ := conv.ToMap(t.params)
	return m
}

// Actions exposes ping and echo, suffixed per instance.
func (t *Tool) Actions() []tool.Action {
	pingSchema, _ := tool.SchemaFor(nil)
	echoSchema, _ := tool.SchemaFor(&echoArgs{})
	greeting := t.params.Greeting
	return []tool.Action{
		{
			Name:        t.actionName("ping"),
			Description: "Liveness probe returning the configured greeting",
			InputSchema: pingSchema,
			Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
				return greeting, nil
			},
		},
		{
			Name:        t.actionName("echo"),
			Description: "Echo the supplied message back to the caller",
			InputSchema: echoSchema,
			Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
				var in echoArgs
				if err := conv.Convert(args, &in); err != nil {
					return nil, err
				}
				return in.Message, nil
			},
		},
	}
}

func (t *Tool) actionName(base string) string {
	if t.params.Suffix == "" {
		return base
	}
	return base + "_" + t.params.Suffix
}

func init() {
	tool.Provide(TypeID, New)
	tool.RegisterParamsType(reflect.TypeOf(Params{}), x.WithName(TypeID))
}
