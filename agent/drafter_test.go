package agent

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
	agenttools "github.com/most4f4/LangGraph-from-Scratch/tools"
)

func TestDrafterGraph_UpdateThenSave(t *testing.T) {
	dir := t.TempDir()
	savePath := filepath.Join(dir, "notes")

	doc := &agenttools.Document{}
	drafterTools := []tools.Tool{
		agenttools.UpdateTool{Doc: doc},
		agenttools.SaveTool{Doc: doc},
	}

	mockLLM := &MockLLM{
		responses: []llms.ContentResponse{
			toolCallResponse("call-1", "update", `{"content": "Dear team, the meeting moved to Friday."}`),
			toolCallResponse("call-2", "save", `{"filename": "`+savePath+`"}`),
		},
	}

	// First turn uses the built-in greeting; the scripted prompt supplies
	// the second instruction.
	prompts := []string{"save it"}
	prompt := func(ctx context.Context) (string, error) {
		next := prompts[0]
		prompts = prompts[1:]
		return next, nil
	}

	runnable, err := NewDrafterGraph(mockLLM, doc, drafterTools, DrafterOptions{Prompt: prompt})
	require.NoError(t, err)

	result, err := runnable.Invoke(context.Background(), InitialState(nil))
	require.NoError(t, err)

	assert.Equal(t, "Dear team, the meeting moved to Friday.", doc.Content)

	saved, err := os.ReadFile(savePath + ".txt")
	require.NoError(t, err)
	assert.Equal(t, doc.Content, string(saved))

	// The session ended on the save confirmation
	messages, err := Messages(result)
	require.NoError(t, err)
	last, ok := chat.LastMessage(messages)
	require.True(t, ok)
	assert.Equal(t, llms.ChatMessageTypeTool, last.Role)
	assert.True(t, documentSaved(messages))
}

func TestDrafterGraph_RequiresPrompt(t *testing.T) {
	doc := &agenttools.Document{}
	_, err := NewDrafterGraph(&MockLLM{}, doc, nil, DrafterOptions{})
	assert.Error(t, err)
}

func TestDocumentSaved(t *testing.T) {
	assert.False(t, documentSaved(nil))

	notSaved := []llms.MessageContent{
		chat.Human("update it"),
		chat.ToolResult("call-1", "update", "Document successfully updated. Current content is: hi"),
	}
	assert.False(t, documentSaved(notSaved))

	saved := append(notSaved, chat.ToolResult("call-2", "save", "Document successfully saved to notes.txt."))
	assert.True(t, documentSaved(saved))

	// An AI message after the save means the session moved on
	moved := append(saved, chat.AI("anything else?"))
	assert.False(t, documentSaved(moved))
}
