package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
)

func TestChatGraph(t *testing.T) {
	mockLLM := &MockLLM{
		responses: []llms.ContentResponse{
			textResponse("Hello! How can I help you today?"),
		},
	}

	runnable, err := NewChatGraph(mockLLM)
	require.NoError(t, err)

	result, err := runnable.Invoke(context.Background(), InitialState([]llms.MessageContent{
		chat.Human("hello"),
	}))
	require.NoError(t, err)

	messages, err := Messages(result)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, llms.ChatMessageTypeHuman, messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, messages[1].Role)
	assert.Equal(t, "Hello! How can I help you today?", chat.Text(messages[1]))
}

func TestChatGraph_ConditionsOnFullHistory(t *testing.T) {
	mockLLM := &MockLLM{
		responses: []llms.ContentResponse{
			textResponse("Your name is Alice."),
		},
	}

	runnable, err := NewChatGraph(mockLLM)
	require.NoError(t, err)

	history := []llms.MessageContent{
		chat.Human("my name is Alice"),
		chat.AI("Nice to meet you, Alice."),
		chat.Human("what's my name?"),
	}

	result, err := runnable.Invoke(context.Background(), InitialState(history))
	require.NoError(t, err)

	// The model saw the entire prior history, not just the latest turn
	require.Len(t, mockLLM.requests, 1)
	assert.Len(t, mockLLM.requests[0], 3)

	last, err := LastText(result)
	require.NoError(t, err)
	assert.Equal(t, "Your name is Alice.", last)
}

func TestChatGraph_TurnsAreIndependent(t *testing.T) {
	mockLLM := &MockLLM{
		responses: []llms.ContentResponse{
			textResponse("Hi!"),
			textResponse("I don't know your name."),
		},
	}

	runnable, err := NewChatGraph(mockLLM)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = runnable.Invoke(ctx, InitialState([]llms.MessageContent{
		chat.Human("my name is Alice"),
	}))
	require.NoError(t, err)

	_, err = runnable.Invoke(ctx, InitialState([]llms.MessageContent{
		chat.Human("what's my name?"),
	}))
	require.NoError(t, err)

	// Each invocation sees exactly the messages it was given; nothing
	// leaks from one run into the next.
	require.Len(t, mockLLM.requests, 2)
	require.Len(t, mockLLM.requests[0], 1)
	require.Len(t, mockLLM.requests[1], 1)
	assert.Equal(t, "what's my name?", chat.Text(mockLLM.requests[1][0]))
}

func TestMessages_InvalidState(t *testing.T) {
	_, err := Messages(State{"messages": "not a slice"})
	assert.Error(t, err)

	_, err = LastText(State{"messages": []llms.MessageContent{}})
	assert.Error(t, err)
}
