// Command rag_agent answers questions about a PDF. At startup the
// document is chunked, embedded, and indexed; at query time the model
// decides when to pull relevant chunks through the retrieve tool.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/tools"

	"github.com/most4f4/LangGraph-from-Scratch/agent"
	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/config"
	"github.com/most4f4/LangGraph-from-Scratch/ingest"
	"github.com/most4f4/LangGraph-from-Scratch/log"
	agenttools "github.com/most4f4/LangGraph-from-Scratch/tools"
)

func main() {
	logger := log.New("rag_agent")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("%v", err)
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.OpenAIKey),
		openai.WithEmbeddingModel(cfg.EmbeddingModel),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		logger.Fatal("failed to create model: %v", err)
	}

	embedder, err := embeddings.NewEmbedder(model)
	if err != nil {
		logger.Fatal("failed to create embedder: %v", err)
	}

	ctx := context.Background()

	index, err := ingest.Build(ctx, cfg, embedder, logger)
	if err != nil {
		logger.Fatal("failed to build the document index: %v", err)
	}

	retrieve := []tools.Tool{
		agenttools.RetrieveTool{Searcher: index, TopK: cfg.TopK},
	}

	runnable, err := agent.NewRAGGraph(model, retrieve, agent.RAGOptions{
		OnToolCall: func(name, args string) {
			fmt.Printf("Calling tool: %s with args %s\n", name, args)
		},
	})
	if err != nil {
		logger.Fatal("failed to compile graph: %v", err)
	}

	fmt.Println(chat.RenderBanner("RAG AGENT"))

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("\nWhat is your question: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		question := strings.TrimSpace(line)
		if strings.EqualFold(question, "exit") || strings.EqualFold(question, "quit") {
			break
		}
		if question == "" {
			continue
		}

		input := []llms.MessageContent{chat.Human(question)}
		result, err := runnable.Invoke(ctx, agent.InitialState(input))
		if err != nil {
			logger.Error("graph invocation failed: %v", err)
			continue
		}

		answer, err := agent.LastText(result)
		if err != nil {
			logger.Error("%v", err)
			continue
		}
		fmt.Println("\n=== ANSWER ===")
		fmt.Println(chat.RenderMessage(chat.AI(answer)))
	}
}
