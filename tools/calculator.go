// Package tools implements the tools.Tool instances used by the agent
// examples. Tool arguments arrive as the raw JSON string emitted by the
// model's tool call; each tool parses its own arguments.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// binaryArgs are the arguments shared by the arithmetic tools.
type binaryArgs struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// NumberParameters is the JSON schema for the arithmetic tools.
func NumberParameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number", "description": "The first operand"},
			"b": map[string]any{"type": "number", "description": "The second operand"},
		},
		"required":             []string{"a", "b"},
		"additionalProperties": false,
	}
}

func parseBinaryArgs(input string) (binaryArgs, error) {
	var args binaryArgs
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return args, fmt.Errorf("invalid arguments %q: %w", input, err)
	}
	return args, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AddTool adds two numbers.
type AddTool struct{}

func (AddTool) Name() string { return "add" }

func (AddTool) Description() string {
	return "Adds two numbers and returns the sum."
}

func (AddTool) Parameters() map[string]any { return NumberParameters() }

func (AddTool) Call(ctx context.Context, input string) (string, error) {
	args, err := parseBinaryArgs(input)
	if err != nil {
		return "", err
	}
	return formatNumber(args.A + args.B), nil
}

// SubtractTool subtracts the second number from the first.
type SubtractTool struct{}

func (SubtractTool) Name() string { return "subtract" }

func (SubtractTool) Description() string {
	return "Subtracts the second number from the first and returns the difference."
}

func (SubtractTool) Parameters() map[string]any { return NumberParameters() }

func (SubtractTool) Call(ctx context.Context, input string) (string, error) {
	args, err := parseBinaryArgs(input)
	if err != nil {
		return "", err
	}
	return formatNumber(args.A - args.B), nil
}

// MultiplyTool multiplies two numbers.
type MultiplyTool struct{}

func (MultiplyTool) Name() string { return "multiply" }

func (MultiplyTool) Description() string {
	return "Multiplies two numbers and returns the product."
}

func (MultiplyTool) Parameters() map[string]any { return NumberParameters() }

func (MultiplyTool) Call(ctx context.Context, input string) (string, error) {
	args, err := parseBinaryArgs(input)
	if err != nil {
		return "", err
	}
	return formatNumber(args.A * args.B), nil
}

// DivideTool divides the first number by the second. Division by zero
// yields infinity rather than an error.
type DivideTool struct{}

func (DivideTool) Name() string { return "divide" }

func (DivideTool) Description() string {
	return "Divides the first number by the second and returns the quotient."
}

func (DivideTool) Parameters() map[string]any { return NumberParameters() }

func (DivideTool) Call(ctx context.Context, input string) (string, error) {
	args, err := parseBinaryArgs(input)
	if err != nil {
		return "", err
	}
	if args.B == 0 {
		return formatNumber(math.Inf(1)), nil
	}
	return formatNumber(args.A / args.B), nil
}
