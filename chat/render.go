package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tmc/langchaingo/llms"
)

var (
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	aiStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	toolStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// RenderMessage formats a single message for the console with a styled
// role prefix.
func RenderMessage(msg llms.MessageContent) string {
	switch msg.Role {
	case llms.ChatMessageTypeHuman:
		return userStyle.Render("USER: ") + Text(msg)
	case llms.ChatMessageTypeAI:
		out := aiStyle.Render("AI: ") + Text(msg)
		if calls := ToolCalls(msg); len(calls) > 0 {
			names := make([]string, 0, len(calls))
			for _, tc := range calls {
				names = append(names, tc.FunctionCall.Name)
			}
			out += "\n" + toolStyle.Render("USING TOOLS: "+strings.Join(names, ", "))
		}
		return out
	case llms.ChatMessageTypeTool:
		for _, part := range msg.Parts {
			if resp, ok := part.(llms.ToolCallResponse); ok {
				return toolStyle.Render("TOOL RESULT: ") + resp.Content
			}
		}
		return toolStyle.Render("TOOL RESULT:")
	default:
		return faintStyle.Render(fmt.Sprintf("%s: ", msg.Role)) + Text(msg)
	}
}

// RenderHistory formats the last n messages of a conversation, oldest first.
func RenderHistory(messages []llms.MessageContent, n int) string {
	if n > 0 && len(messages) > n {
		messages = messages[len(messages)-n:]
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, RenderMessage(msg))
	}
	return strings.Join(lines, "\n")
}

// RenderBanner formats a section banner like "===== DRAFTER =====".
func RenderBanner(title string) string {
	return faintStyle.Render("===== " + title + " =====")
}
