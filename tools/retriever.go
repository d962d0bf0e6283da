package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/schema"
)

// Searcher runs a similarity query against an indexed document collection.
// Both the Chroma-backed and in-memory stores in the ingest package satisfy
// this.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]schema.Document, error)
}

// RetrieveTool looks up relevant passages from the indexed document and
// formats them as numbered results for the model to read.
type RetrieveTool struct {
	Searcher Searcher
	TopK     int
}

func (RetrieveTool) Name() string { return "retrieve" }

func (RetrieveTool) Description() string {
	return "Retrieves relevant information from the loaded document based on the query."
}

func (RetrieveTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query to run against the document",
			},
		},
		"required":             []string{"query"},
		"additionalProperties": false,
	}
}

func (t RetrieveTool) Call(ctx context.Context, input string) (string, error) {
	query := input
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(input), &args); err == nil && args.Query != "" {
		query = args.Query
	}

	k := t.TopK
	if k <= 0 {
		k = 5
	}

	docs, err := t.Searcher.Search(ctx, query, k)
	if err != nil {
		return "", fmt.Errorf("similarity search failed: %w", err)
	}

	if len(docs) == 0 {
		return "No relevant information found in the document.", nil
	}

	results := make([]string, 0, len(docs))
	for i, doc := range docs {
		results = append(results, fmt.Sprintf("Result %d:\n%s\n", i+1, doc.PageContent))
	}

	return strings.Join(results, "\n\n"), nil
}
