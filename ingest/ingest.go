// Package ingest loads source documents, splits them into chunks, and
// indexes them for similarity search. PDF parsing, splitting, embeddings,
// and the vector stores all come from external libraries; this package only
// wires them together for the RAG agent.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"
)

// LoadDocuments loads a file into documents. PDFs produce one document per
// page; text and markdown files produce a single document.
func LoadDocuments(ctx context.Context, path string) ([]schema.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		docs, err := documentloaders.NewPDF(f, info.Size()).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load pdf %s: %w", path, err)
		}
		return docs, nil
	case ".txt", ".md":
		docs, err := documentloaders.NewText(f).Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load text %s: %w", path, err)
		}
		return docs, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// SplitDocuments splits documents into overlapping chunks for indexing.
func SplitDocuments(docs []schema.Document, chunkSize, chunkOverlap int) ([]schema.Document, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
	)

	chunks, err := textsplitter.SplitDocuments(splitter, docs)
	if err != nil {
		return nil, fmt.Errorf("split documents: %w", err)
	}
	return chunks, nil
}
