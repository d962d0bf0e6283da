package agent

import (
	"context"
	"fmt"

	"github.com/smallnest/langgraphgo/graph"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
)

// DefaultRAGSystemPrompt is the instruction used by the RAG agent when the
// caller does not provide one.
const DefaultRAGSystemPrompt = `You are an intelligent AI assistant who answers questions about the document loaded into your knowledge base.
Use the retrieve tool available to answer questions about the document. You can make multiple calls if needed.
If you need to look up some information before asking a follow up question, you are allowed to do that.
Please always cite the specific parts of the document you use in your answers.`

// RAGOptions configures the retrieval graph.
type RAGOptions struct {
	SystemPrompt string
	// OnToolCall, when set, is notified before each retrieval runs. The REPL
	// uses it to show which query the agent is searching for.
	OnToolCall func(name, args string)
}

// NewRAGGraph builds the retrieval loop:
//
//	llm -> (pending tool calls? retrieve : END)
//	retrieve -> llm
//
// The llm node decides whether more retrieval is needed; the retrieve node
// runs the similarity search tool and feeds the passages back. The loop
// exits when the model's reply carries no further tool requests.
func NewRAGGraph(model llms.Model, retrieveTools []tools.Tool, opts RAGOptions) (*graph.StateRunnable[State], error) {
	systemPrompt := opts.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = DefaultRAGSystemPrompt
	}

	registry := NewRegistry(retrieveTools)
	toolDefs := ToolDefs(retrieveTools)

	workflow := newMessageWorkflow()

	workflow.AddNode("llm", "Decide whether more retrieval is needed", func(ctx context.Context, state State) (State, error) {
		messages, err := Messages(state)
		if err != nil {
			return nil, err
		}

		prompt := append([]llms.MessageContent{chat.System(systemPrompt)}, messages...)

		resp, err := model.GenerateContent(ctx, prompt, llms.WithTools(toolDefs))
		if err != nil {
			return nil, fmt.Errorf("model call failed: %w", err)
		}

		choice := resp.Choices[0]
		aiMsg := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		if choice.Content != "" {
			aiMsg.Parts = append(aiMsg.Parts, llms.TextPart(choice.Content))
		}
		for _, tc := range choice.ToolCalls {
			aiMsg.Parts = append(aiMsg.Parts, tc)
		}

		return State{"messages": []llms.MessageContent{aiMsg}}, nil
	})

	workflow.AddNode("retrieve", "Run the requested similarity searches", func(ctx context.Context, state State) (State, error) {
		messages, err := Messages(state)
		if err != nil {
			return nil, err
		}

		last, ok := chat.LastMessage(messages)
		if !ok {
			return nil, fmt.Errorf("no messages in state")
		}

		if opts.OnToolCall != nil {
			for _, tc := range chat.ToolCalls(last) {
				opts.OnToolCall(tc.FunctionCall.Name, tc.FunctionCall.Arguments)
			}
		}

		toolMessages := registry.ExecuteToolCalls(ctx, last)
		return State{"messages": toolMessages}, nil
	})

	workflow.SetEntryPoint("llm")

	workflow.AddConditionalEdge("llm", func(ctx context.Context, state State) string {
		messages, err := Messages(state)
		if err != nil {
			return graph.END
		}
		if last, ok := chat.LastMessage(messages); ok && chat.HasToolCalls(last) {
			return "retrieve"
		}
		return graph.END
	})

	workflow.AddEdge("retrieve", "llm")

	return workflow.Compile()
}
