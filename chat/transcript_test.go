package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestFormatTranscript(t *testing.T) {
	messages := []llms.MessageContent{
		Human("hello"),
		AI("hi there"),
		System("you are helpful"), // not persisted
		Human("bye"),
	}

	got := FormatTranscript(messages)

	assert.True(t, strings.HasPrefix(got, "Your Conversation Log:\n"))
	assert.True(t, strings.HasSuffix(got, "End of Conversation"))
	assert.Contains(t, got, "You: hello\n")
	assert.Contains(t, got, "AI: hi there\n\n")
	assert.Contains(t, got, "You: bye\n")
	assert.NotContains(t, got, "you are helpful")
}

func TestParseTranscript(t *testing.T) {
	log := "Your Conversation Log:\nYou: hello\nAI: hi there\n\nYou: what's 2+2?\nAI: 4\n\nEnd of Conversation"

	messages, err := ParseTranscript(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, messages, 4)

	assert.Equal(t, llms.ChatMessageTypeHuman, messages[0].Role)
	assert.Equal(t, "hello", Text(messages[0]))
	assert.Equal(t, llms.ChatMessageTypeAI, messages[1].Role)
	assert.Equal(t, "hi there", Text(messages[1]))
	assert.Equal(t, "what's 2+2?", Text(messages[2]))
	assert.Equal(t, "4", Text(messages[3]))
}

func TestTranscriptRoundTrip(t *testing.T) {
	original := []llms.MessageContent{
		Human("remember my name is Alice"),
		AI("Nice to meet you, Alice."),
		Human("what's my name?"),
		AI("Your name is Alice."),
	}

	parsed, err := ParseTranscript(strings.NewReader(FormatTranscript(original)))
	require.NoError(t, err)
	require.Len(t, parsed, len(original))

	for i := range original {
		assert.Equal(t, original[i].Role, parsed[i].Role)
		assert.Equal(t, Text(original[i]), Text(parsed[i]))
	}
}

func TestParseTranscript_Empty(t *testing.T) {
	messages, err := ParseTranscript(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, messages)
}
