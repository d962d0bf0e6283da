package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

func TestRenderMessage_Roles(t *testing.T) {
	assert.Contains(t, RenderMessage(Human("hi")), "USER: hi")
	assert.Contains(t, RenderMessage(AI("hello")), "AI: hello")
	assert.Contains(t, RenderMessage(ToolResult("c1", "add", "42")), "TOOL RESULT: 42")
}

func TestRenderHistory_All(t *testing.T) {
	history := []llms.MessageContent{
		Human("one"),
		AI("1"),
		Human("two"),
		AI("2"),
	}

	// n = 0 renders the whole conversation, oldest first
	out := RenderHistory(history, 0)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "one")
	assert.Contains(t, lines[3], "2")
}

func TestRenderHistory_LastN(t *testing.T) {
	history := []llms.MessageContent{
		Human("one"),
		AI("1"),
		Human("two"),
		AI("2"),
	}

	out := RenderHistory(history, 2)
	assert.NotContains(t, out, "one")
	assert.Contains(t, out, "two")
}
