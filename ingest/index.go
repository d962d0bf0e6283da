package ingest

import (
	"context"
	"fmt"

	"github.com/smallnest/langgraphgo/rag"
	ragstore "github.com/smallnest/langgraphgo/rag/store"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/vectorstores"
	"github.com/tmc/langchaingo/vectorstores/chroma"
)

// Index is an indexed document collection supporting similarity search.
// It is the Searcher the retrieve tool runs against.
type Index interface {
	Add(ctx context.Context, docs []schema.Document) error
	Search(ctx context.Context, query string, k int) ([]schema.Document, error)
}

// MemoryIndex keeps embeddings in process memory. It is the default when no
// Chroma server is configured; the index is rebuilt on every start.
type MemoryIndex struct {
	store    *ragstore.InMemoryVectorStore
	embedder *rag.LangChainEmbedder
}

// NewMemoryIndex creates an in-memory index using the given embedder.
func NewMemoryIndex(embedder embeddings.Embedder) *MemoryIndex {
	ragEmbedder := rag.NewLangChainEmbedder(embedder)
	return &MemoryIndex{
		store:    ragstore.NewInMemoryVectorStore(ragEmbedder),
		embedder: ragEmbedder,
	}
}

// Add embeds and stores document chunks.
func (ix *MemoryIndex) Add(ctx context.Context, docs []schema.Document) error {
	ragDocs := make([]rag.Document, len(docs))
	for i, doc := range docs {
		ragDocs[i] = rag.Document{
			ID:       fmt.Sprintf("chunk_%d", i),
			Content:  doc.PageContent,
			Metadata: doc.Metadata,
		}
	}
	return ix.store.Add(ctx, ragDocs)
}

// Search embeds the query and returns the k nearest chunks.
func (ix *MemoryIndex) Search(ctx context.Context, query string, k int) ([]schema.Document, error) {
	queryEmb, err := ix.embedder.EmbedDocument(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := ix.store.Search(ctx, queryEmb, k)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	docs := make([]schema.Document, len(results))
	for i, result := range results {
		docs[i] = schema.Document{
			PageContent: result.Document.Content,
			Metadata:    result.Document.Metadata,
		}
	}
	return docs, nil
}

// ChromaIndex persists embeddings in a Chroma server, so an already-built
// collection survives restarts.
type ChromaIndex struct {
	store vectorstores.VectorStore
}

// NewChromaIndex connects to a Chroma server.
func NewChromaIndex(url, collection string, embedder embeddings.Embedder) (*ChromaIndex, error) {
	store, err := chroma.New(
		chroma.WithChromaURL(url),
		chroma.WithEmbedder(embedder),
		chroma.WithDistanceFunction("cosine"),
		chroma.WithNameSpace(collection),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to chroma at %s: %w", url, err)
	}
	return &ChromaIndex{store: store}, nil
}

// Add embeds and stores document chunks.
func (ix *ChromaIndex) Add(ctx context.Context, docs []schema.Document) error {
	_, err := ix.store.AddDocuments(ctx, docs)
	return err
}

// Search returns the k nearest chunks for the query.
func (ix *ChromaIndex) Search(ctx context.Context, query string, k int) ([]schema.Document, error) {
	return ix.store.SimilaritySearch(ctx, query, k)
}
