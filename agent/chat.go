package agent

import (
	"context"
	"fmt"

	"github.com/smallnest/langgraphgo/graph"
	"github.com/tmc/langchaingo/llms"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
)

// State is the conversation state flowing through every graph: a map whose
// "messages" key holds the append-only history.
type State = map[string]any

// newMessageWorkflow creates a state graph whose "messages" key is merged
// with the append reducer.
func newMessageWorkflow() *graph.StateGraph[State] {
	workflow := graph.NewStateGraph[State]()

	schema := graph.NewMapSchema()
	schema.RegisterReducer("messages", graph.AppendReducer)
	workflow.SetSchema(schema)

	return workflow
}

// InitialState builds the input state for a graph invocation.
func InitialState(messages []llms.MessageContent) State {
	return State{"messages": messages}
}

// Messages extracts the conversation history from a graph state.
func Messages(state State) ([]llms.MessageContent, error) {
	messages, ok := state["messages"].([]llms.MessageContent)
	if !ok {
		return nil, fmt.Errorf("messages key not found or invalid type")
	}
	return messages, nil
}

// LastText returns the text of the latest message in a graph state.
func LastText(state State) (string, error) {
	messages, err := Messages(state)
	if err != nil {
		return "", err
	}
	last, ok := chat.LastMessage(messages)
	if !ok {
		return "", fmt.Errorf("no messages in state")
	}
	return chat.Text(last), nil
}

// NewChatGraph builds the single-node conversation graph used by the
// chatbot and memory agent: one processing step that sends the full history
// to the model and appends its reply.
func NewChatGraph(model llms.Model) (*graph.StateRunnable[State], error) {
	workflow := newMessageWorkflow()

	workflow.AddNode("process", "Generate a reply from the conversation history", func(ctx context.Context, state State) (State, error) {
		messages, err := Messages(state)
		if err != nil {
			return nil, err
		}

		resp, err := model.GenerateContent(ctx, messages)
		if err != nil {
			return nil, err
		}

		reply := chat.AI(resp.Choices[0].Content)
		return State{"messages": []llms.MessageContent{reply}}, nil
	})

	workflow.SetEntryPoint("process")
	workflow.AddEdge("process", graph.END)

	return workflow.Compile()
}
