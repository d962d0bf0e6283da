package agent

import (
	"context"
	"fmt"

	"github.com/smallnest/langgraphgo/graph"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
)

// ReactOptions configures the ReAct graph.
type ReactOptions struct {
	// SystemPrompt is prepended to the history on every model call.
	SystemPrompt string
	// MaxIterations caps the agent/tools cycle. Default 20.
	MaxIterations int
	// OnStep, when set, is called with every message the graph appends.
	// The REPLs use it to stream progress to the console.
	OnStep func(msg llms.MessageContent)
}

// NewReactGraph builds the tool-calling cycle:
//
//	agent -> (pending tool calls? tools : END)
//	tools -> agent
//
// The agent node asks the model for the next step with the tool definitions
// bound; the tools node executes every requested call and feeds the results
// back.
func NewReactGraph(model llms.Model, inputTools []tools.Tool, opts ReactOptions) (*graph.StateRunnable[State], error) {
	maxIterations := opts.MaxIterations
	if maxIterations == 0 {
		maxIterations = 20
	}

	registry := NewRegistry(inputTools)
	toolDefs := ToolDefs(inputTools)
	emit := opts.OnStep
	if emit == nil {
		emit = func(llms.MessageContent) {}
	}

	workflow := newMessageWorkflow()

	workflow.AddNode("agent", "Decide the next step with the model", func(ctx context.Context, state State) (State, error) {
		messages, err := Messages(state)
		if err != nil {
			return nil, err
		}

		iteration := 0
		if count, ok := state["iteration_count"].(int); ok {
			iteration = count
		}
		if iteration >= maxIterations {
			final := chat.AI("Maximum iterations reached. Please try a simpler query.")
			emit(final)
			return State{"messages": []llms.MessageContent{final}}, nil
		}

		prompt := messages
		if opts.SystemPrompt != "" {
			prompt = append([]llms.MessageContent{chat.System(opts.SystemPrompt)}, messages...)
		}

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

		emit(aiMsg)
		return State{
			"messages":        []llms.MessageContent{aiMsg},
			"iteration_count": iteration + 1,
		}, nil
	})

	workflow.AddNode("tools", "Execute the requested tool calls", func(ctx context.Context, state State) (State, error) {
		messages, err := Messages(state)
		if err != nil {
			return nil, err
		}

		last, ok := chat.LastMessage(messages)
		if !ok || last.Role != llms.ChatMessageTypeAI {
			return nil, fmt.Errorf("last message is not an AI message")
		}

		toolMessages := registry.ExecuteToolCalls(ctx, last)
		for _, msg := range toolMessages {
			emit(msg)
		}

		return State{"messages": toolMessages}, nil
	})

	workflow.SetEntryPoint("agent")

	workflow.AddConditionalEdge("agent", func(ctx context.Context, state State) string {
		messages, err := Messages(state)
		if err != nil {
			return graph.END
		}
		if last, ok := chat.LastMessage(messages); ok && chat.HasToolCalls(last) {
			return "tools"
		}
		return graph.END
	})

	workflow.AddEdge("tools", "agent")

	return workflow.Compile()
}
