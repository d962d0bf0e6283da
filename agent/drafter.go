package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/smallnest/langgraphgo/graph"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
	agenttools "github.com/most4f4/LangGraph-from-Scratch/tools"
)

const drafterGreeting = "I'm ready to help you update a document. What would you like to create?"

// DrafterOptions configures the drafter graph.
type DrafterOptions struct {
	// Prompt reads the next user instruction. Required for interactive use;
	// tests supply a scripted function.
	Prompt func(ctx context.Context) (string, error)
	// OnStep, when set, receives every message appended to the session.
	OnStep func(msg llms.MessageContent)
}

// drafterSystemPrompt embeds the live document content so the model always
// sees the current draft.
func drafterSystemPrompt(doc *agenttools.Document) string {
	return fmt.Sprintf(`You are Drafter, a helpful writing assistant. You are going to help the user update and modify documents.

- If the user wants to update or modify content, use the 'update' tool with the complete updated content.
- If the user wants to save and finish, you need to use the 'save' tool.
- Make sure to always show the current document state after modifications.

The current document content is: %s`, doc.Content)
}

// NewDrafterGraph builds the drafting loop:
//
//	agent -> tools -> (document saved? END : agent)
//
// The agent node gathers the user's next instruction, combines it with the
// system prompt and history, and asks the model; the tools node applies the
// update/save calls against the shared document buffer.
func NewDrafterGraph(model llms.Model, doc *agenttools.Document, inputTools []tools.Tool, opts DrafterOptions) (*graph.StateRunnable[State], error) {
	if opts.Prompt == nil {
		return nil, fmt.Errorf("drafter requires a prompt function")
	}

	registry := NewRegistry(inputTools)
	toolDefs := ToolDefs(inputTools)
	emit := opts.OnStep
	if emit == nil {
		emit = func(llms.MessageContent) {}
	}

	workflow := newMessageWorkflow()

	workflow.AddNode("agent", "Gather the user's instruction and call the model", func(ctx context.Context, state State) (State, error) {
		messages, _ := state["messages"].([]llms.MessageContent)

		var userMessage llms.MessageContent
		if len(messages) == 0 {
			userMessage = chat.Human(drafterGreeting)
		} else {
			input, err := opts.Prompt(ctx)
			if err != nil {
				return nil, fmt.Errorf("reading user input: %w", err)
			}
			userMessage = chat.Human(input)
		}
		emit(userMessage)

		prompt := append([]llms.MessageContent{chat.System(drafterSystemPrompt(doc))}, messages...)
		prompt = append(prompt, userMessage)

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

		return State{"messages": []llms.MessageContent{userMessage, aiMsg}}, nil
	})

	workflow.AddNode("tools", "Apply update/save calls to the document", func(ctx context.Context, state State) (State, error) {
		messages, err := Messages(state)
		if err != nil {
			return nil, err
		}

		last, ok := chat.LastMessage(messages)
		if !ok || !chat.HasToolCalls(last) {
			// Nothing to run; the loop heads back to the agent node.
			return State{}, nil
		}

		toolMessages := registry.ExecuteToolCalls(ctx, last)
		for _, msg := range toolMessages {
			emit(msg)
		}

		return State{"messages": toolMessages}, nil
	})

	workflow.SetEntryPoint("agent")
	workflow.AddEdge("agent", "tools")

	workflow.AddConditionalEdge("tools", func(ctx context.Context, state State) string {
		messages, err := Messages(state)
		if err != nil {
			return graph.END
		}
		if documentSaved(messages) {
			return graph.END
		}
		return "agent"
	})

	return workflow.Compile()
}

// documentSaved reports whether the latest tool result confirms a save.
func documentSaved(messages []llms.MessageContent) bool {
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		if msg.Role != llms.ChatMessageTypeTool {
			return false
		}
		for _, part := range msg.Parts {
			if resp, ok := part.(llms.ToolCallResponse); ok {
				content := strings.ToLower(resp.Content)
				if strings.Contains(content, "saved") && strings.Contains(content, "document") {
					return true
				}
			}
		}
	}
	return false
}
