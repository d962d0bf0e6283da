package chat

import (
	"bufio"
	"io"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// Transcript line prefixes and framing. The log is append-only plain text:
//
//	Your Conversation Log:
//	You: hello
//	AI: hi there
//
//	End of Conversation
const (
	transcriptHeader = "Your Conversation Log:"
	transcriptFooter = "End of Conversation"
	humanPrefix      = "You: "
	aiPrefix         = "AI: "
)

// FormatTranscript renders a conversation history in the transcript log
// format. Messages other than user and assistant turns (system prompts,
// tool results) are not persisted.
func FormatTranscript(messages []llms.MessageContent) string {
	var sb strings.Builder
	sb.WriteString(transcriptHeader + "\n")

	for _, msg := range messages {
		switch msg.Role {
		case llms.ChatMessageTypeHuman:
			sb.WriteString(humanPrefix + Text(msg) + "\n")
		case llms.ChatMessageTypeAI:
			sb.WriteString(aiPrefix + Text(msg) + "\n\n")
		}
	}

	sb.WriteString(transcriptFooter)
	return sb.String()
}

// ParseTranscript reads a transcript log back into a conversation history.
// Lines without a known prefix (the header, footer and blank separators)
// are skipped.
func ParseTranscript(r io.Reader) ([]llms.MessageContent, error) {
	var messages []llms.MessageContent

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, humanPrefix):
			messages = append(messages, Human(strings.TrimPrefix(line, humanPrefix)))
		case strings.HasPrefix(line, aiPrefix):
			messages = append(messages, AI(strings.TrimPrefix(line, aiPrefix)))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
