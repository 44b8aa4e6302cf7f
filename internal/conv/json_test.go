package conv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MCP-Pipeline/MCPStack/internal/conv"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

func TestConvertMapToStruct(t *testing.T) {
	var out sample
	require.NoError(t, conv.Convert(map[string]interface{}{"name": "a", "count": 2}, &out))
	assert.EqualValues(t, sample{Name: "a", Count: 2}, out)

	assert.Error(t, conv.Convert(map[string]interface{}{"count": "not a number"}, &out))
}

func TestConvertNilSourceLeavesTargetZero(t *testing.T) {
	var out sample
	require.NoError(t, conv.Convert(nil, &out))
	assert.EqualValues(t, sample{}, out)
}

func TestToMap(t *testing.T) {
	m, err := conv.ToMap(sample{Name: "a"})
	require.NoError(t, err)
	assert.EqualValues(t, map[string]interface{}{"name": "a"}, m)
}

func TestPointerDereference(t *testing.T) {
	p := conv.Pointer("v")
	assert.EqualValues(t, "v", conv.Dereference(p))
	assert.EqualValues(t, "", conv.Dereference[string](nil))
}
