package agent

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// MockLLM implements llms.Model for testing with scripted responses.
type MockLLM struct {
	responses []llms.ContentResponse
	requests  [][]llms.MessageContent
	callCount int
}

func (m *MockLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.requests = append(m.requests, messages)
	if m.callCount >= len(m.responses) {
		return &llms.ContentResponse{
			Choices: []*llms.ContentChoice{
				{Content: "No more responses"},
			},
		}, nil
	}
	resp := m.responses[m.callCount]
	m.callCount++
	return &resp, nil
}

func (m *MockLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", nil
}

func textResponse(content string) llms.ContentResponse {
	return llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: content},
		},
	}
}

func toolCallResponse(id, name, arguments string) llms.ContentResponse {
	return llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{
				ToolCalls: []llms.ToolCall{
					{
						ID:   id,
						Type: "function",
						FunctionCall: &llms.FunctionCall{
							Name:      name,
							Arguments: arguments,
						},
					},
				},
			},
		},
	}
}
