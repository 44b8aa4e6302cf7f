package echo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCP-Pipeline/MCPStack/stack/tools/echo"
)

func TestEchoActionsAreSuffixed(t *testing.T) {
	plain := echo.NewWithParams(echo.Params{})
	suffixed := echo.NewWithParams(echo.Params{Suffix: "db"})

	var names []string
	for _, a := range plain.Actions() {
		names = append(names, a.Name)
	}
	assert.EqualValues(t, []string{"ping", "echo"}, names)

	names = nil
	for _, a := range suffixed.Actions() {
		names = append(names, a.Name)
	}
	assert.EqualValues(t, []string{"ping_db", "echo_db"}, names)
}

func TestEchoPingReturnsGreeting(t *testing.T) {
	instance := echo.NewWithParams(echo.Params{Greeting: "hello"})
	ping := instance.Actions()[0]

	out, err := ping.Handler(context.Background(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, "hello", out)

	// The greeting defaults when unset.
	fallback := echo.NewWithParams(echo.Params{})
	out, err = fallback.Actions()[0].Handler(context.Background(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, "pong", out)
}

func TestEchoRepeatsMessage(t *testing.T) {
	instance := echo.NewWithParams(echo.Params{})
	action := instance.Actions()[1]

	out, err := action.Handler(context.Background(), map[string]interface{}{"message": "ping me"})
	require.NoError(t, err)
	assert.EqualValues(t, "ping me", out)
}

func TestEchoNewFromParamsMap(t *testing.T) {
	instance, err := echo.New(map[string]interface{}{"suffix": "x", "greeting": "hey"})
	require.NoError(t, err)
	assert.EqualValues(t, echo.TypeID, instance.TypeID())
	assert.EqualValues(t, map[string]interface{}{"suffix": "x", "greeting": "hey"}, instance.Params())

	_, err = echo.New(map[string]interface{}{"suffix": 42})
	assert.Error(t, err)
}
