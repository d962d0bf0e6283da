package ingest

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"

	"github.com/most4f4/LangGraph-from-Scratch/config"
	"github.com/most4f4/LangGraph-from-Scratch/log"
)

// Build loads the configured document, splits it, and indexes the chunks.
// A Chroma server is used when CHROMA_URL is set; otherwise the index lives
// in memory for the lifetime of the process.
func Build(ctx context.Context, cfg config.Config, embedder embeddings.Embedder, logger log.Logger) (Index, error) {
	docs, err := LoadDocuments(ctx, cfg.PDFPath)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded %d page(s) from %s", len(docs), cfg.PDFPath)

	chunks, err := SplitDocuments(docs, cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	logger.Info("Split into %d chunks", len(chunks))

	var index Index
	if cfg.ChromaURL != "" {
		index, err = NewChromaIndex(cfg.ChromaURL, cfg.Collection, embedder)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Chroma vector store at %s (collection %s)", cfg.ChromaURL, cfg.Collection)
	} else {
		index = NewMemoryIndex(embedder)
		logger.Info("Using in-memory vector store")
	}

	if err := index.Add(ctx, chunks); err != nil {
		return nil, fmt.Errorf("index documents: %w", err)
	}
	logger.Info("Indexed %d document chunks", len(chunks))

	return index, nil
}
