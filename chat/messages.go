// Package chat contains the conversation-state helpers shared by the agent
// examples: message constructors, tool-call inspection, the plain-text
// transcript format, and console rendering.
package chat

import (
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Human builds a user message.
func Human(text string) llms.MessageContent {
	return llms.TextParts(llms.ChatMessageTypeHuman, text)
}

// AI builds an assistant message.
func AI(text string) llms.MessageContent {
	return llms.TextParts(llms.ChatMessageTypeAI, text)
}

// System builds a system-instruction message.
func System(text string) llms.MessageContent {
	return llms.TextParts(llms.ChatMessageTypeSystem, text)
}

// ToolResult builds a tool message carrying the result of a tool call,
// correlated back to the originating request by ID.
func ToolResult(callID, name, content string) llms.MessageContent {
	return llms.MessageContent{
		Role: llms.ChatMessageTypeTool,
		Parts: []llms.ContentPart{
			llms.ToolCallResponse{
				ToolCallID: callID,
				Name:       name,
				Content:    content,
			},
		},
	}
}

// Text returns the concatenated text parts of a message.
func Text(msg llms.MessageContent) string {
	var sb strings.Builder
	for _, part := range msg.Parts {
		if tc, ok := part.(llms.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}

// ToolCalls returns the tool calls requested by an assistant message.
func ToolCalls(msg llms.MessageContent) []llms.ToolCall {
	var calls []llms.ToolCall
	for _, part := range msg.Parts {
		if tc, ok := part.(llms.ToolCall); ok {
			calls = append(calls, tc)
		}
	}
	return calls
}

// HasToolCalls reports whether the message carries pending tool calls.
func HasToolCalls(msg llms.MessageContent) bool {
	for _, part := range msg.Parts {
		if _, ok := part.(llms.ToolCall); ok {
			return true
		}
	}
	return false
}

// LastMessage returns the latest message in the history, if any.
func LastMessage(messages []llms.MessageContent) (llms.MessageContent, bool) {
	if len(messages) == 0 {
		return llms.MessageContent{}, false
	}
	return messages[len(messages)-1], true
}
