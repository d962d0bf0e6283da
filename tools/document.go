package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Document is the shared drafting buffer. It is threaded explicitly through
// the tools that modify it; the agent programs run single-threaded so no
// locking is required.
type Document struct {
	Content string
}

// UpdateTool replaces the document content with new text.
type UpdateTool struct {
	Doc *Document
}

func (UpdateTool) Name() string { return "update" }

func (UpdateTool) Description() string {
	return "Updates the document with new content. Pass the complete updated document text."
}

func (UpdateTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "The complete new content of the document",
			},
		},
		"required":             []string{"content"},
		"additionalProperties": false,
	}
}

func (t UpdateTool) Call(ctx context.Context, input string) (string, error) {
	var args struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid arguments %q: %w", input, err)
	}

	t.Doc.Content = args.Content
	return fmt.Sprintf("Document successfully updated. Current content is: %s", t.Doc.Content), nil
}

// SaveTool writes the current document content to a text file and ends the
// drafting session.
type SaveTool struct {
	Doc *Document
}

func (SaveTool) Name() string { return "save" }

func (SaveTool) Description() string {
	return "Saves the current document content to a text file and finishes the session."
}

func (SaveTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"filename": map[string]any{
				"type":        "string",
				"description": "The name of the text file to save the content to",
			},
		},
		"required":             []string{"filename"},
		"additionalProperties": false,
	}
}

func (t SaveTool) Call(ctx context.Context, input string) (string, error) {
	var args struct {
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid arguments %q: %w", input, err)
	}

	filename := args.Filename
	if !strings.HasSuffix(filename, ".txt") {
		filename += ".txt"
	}

	if err := os.WriteFile(filename, []byte(t.Doc.Content), 0o644); err != nil {
		return fmt.Sprintf("Error saving document: %v", err), nil
	}

	return fmt.Sprintf("Document successfully saved to %s.", filename), nil
}
