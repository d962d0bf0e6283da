// Package agent builds the example graphs: a plain chat graph, a ReAct
// tool-calling graph, the drafter loop, and the RAG retrieval loop. State is
// a map with a "messages" key merged by the framework's append reducer.
package agent

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
)

// parameterized is implemented by tools that declare their own argument
// schema. Tools without it get the generic single-input schema.
type parameterized interface {
	Parameters() map[string]any
}

// ToolDefs converts tools to the llms.Tool definitions passed to the model.
func ToolDefs(inputTools []tools.Tool) []llms.Tool {
	defs := make([]llms.Tool, 0, len(inputTools))
	for _, t := range inputTools {
		var params map[string]any
		if pt, ok := t.(parameterized); ok {
			params = pt.Parameters()
		} else {
			params = map[string]any{
				"type": "object",
				"properties": map[string]any{
					"input": map[string]any{
						"type":        "string",
						"description": "The input query for the tool",
					},
				},
				"required":             []string{"input"},
				"additionalProperties": false,
			}
		}

		defs = append(defs, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  params,
			},
		})
	}
	return defs
}

// Registry indexes tools by name for dispatch.
type Registry map[string]tools.Tool

// NewRegistry builds a registry from a tool list.
func NewRegistry(inputTools []tools.Tool) Registry {
	reg := make(Registry, len(inputTools))
	for _, t := range inputTools {
		reg[t.Name()] = t
	}
	return reg
}

// ExecuteToolCalls runs every tool call requested by the assistant message
// and returns one tool message per call, correlated by call ID. An unknown
// tool name produces a corrective tool message so the model can retry;
// a tool error is reported the same way.
func (r Registry) ExecuteToolCalls(ctx context.Context, msg llms.MessageContent) []llms.MessageContent {
	var results []llms.MessageContent

	for _, tc := range chat.ToolCalls(msg) {
		name := tc.FunctionCall.Name

		tool, ok := r[name]
		if !ok {
			results = append(results, chat.ToolResult(tc.ID, name,
				"Incorrect tool name, please retry and select a valid tool from the list of available tools."))
			continue
		}

		content, err := tool.Call(ctx, tc.FunctionCall.Arguments)
		if err != nil {
			content = fmt.Sprintf("Error: %v", err)
		}

		results = append(results, chat.ToolResult(tc.ID, name, content))
	}

	return results
}
