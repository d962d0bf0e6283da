package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTool(t *testing.T) {
	result, err := AddTool{}.Call(context.Background(), `{"a": 30, "b": 12}`)
	require.NoError(t, err)
	assert.Equal(t, "42", result)
}

func TestSubtractTool(t *testing.T) {
	result, err := SubtractTool{}.Call(context.Background(), `{"a": 10, "b": 4}`)
	require.NoError(t, err)
	assert.Equal(t, "6", result)

	result, err = SubtractTool{}.Call(context.Background(), `{"a": 4, "b": 10}`)
	require.NoError(t, err)
	assert.Equal(t, "-6", result)
}

func TestMultiplyTool(t *testing.T) {
	result, err := MultiplyTool{}.Call(context.Background(), `{"a": 42, "b": 6}`)
	require.NoError(t, err)
	assert.Equal(t, "252", result)
}

func TestDivideTool(t *testing.T) {
	result, err := DivideTool{}.Call(context.Background(), `{"a": 10, "b": 4}`)
	require.NoError(t, err)
	assert.Equal(t, "2.5", result)
}

func TestDivideTool_ByZero(t *testing.T) {
	result, err := DivideTool{}.Call(context.Background(), `{"a": 1, "b": 0}`)
	require.NoError(t, err)
	assert.Equal(t, "+Inf", result)
}

func TestCalculator_InvalidArguments(t *testing.T) {
	_, err := AddTool{}.Call(context.Background(), `not json`)
	assert.Error(t, err)
}

func TestCalculator_Metadata(t *testing.T) {
	assert.Equal(t, "add", AddTool{}.Name())
	assert.Equal(t, "subtract", SubtractTool{}.Name())
	assert.Equal(t, "multiply", MultiplyTool{}.Name())
	assert.Equal(t, "divide", DivideTool{}.Name())

	params := AddTool{}.Parameters()
	assert.Equal(t, "object", params["type"])
	assert.Contains(t, params["properties"], "a")
	assert.Contains(t, params["properties"], "b")
}
