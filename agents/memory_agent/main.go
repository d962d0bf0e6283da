// Command memory_agent is a chatbot that remembers past sessions. On
// startup it loads the previous conversation from the configured
// transcript store, and on exit it writes the full transcript back so
// the next session picks up where this one left off.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/most4f4/LangGraph-from-Scratch/agent"
	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/config"
	"github.com/most4f4/LangGraph-from-Scratch/log"
	"github.com/most4f4/LangGraph-from-Scratch/store"
	filestore "github.com/most4f4/LangGraph-from-Scratch/store/file"
	"github.com/most4f4/LangGraph-from-Scratch/store/memory"
	"github.com/most4f4/LangGraph-from-Scratch/store/postgres"
	"github.com/most4f4/LangGraph-from-Scratch/store/redis"
	"github.com/most4f4/LangGraph-from-Scratch/store/sqlite"
)

// newTranscriptStore selects the persistence backend from configuration.
func newTranscriptStore(ctx context.Context, cfg config.Config) (store.TranscriptStore, error) {
	switch cfg.StoreBackend {
	case "memory":
		return memory.NewMemoryTranscriptStore(), nil
	case "file":
		return filestore.NewFileTranscriptStore(filepath.Dir(cfg.TranscriptPath))
	case "sqlite":
		return sqlite.NewSqliteTranscriptStore(sqlite.SqliteOptions{Path: cfg.SQLitePath})
	case "redis":
		return redis.NewRedisTranscriptStore(redis.RedisOptions{Addr: cfg.RedisAddr}), nil
	case "postgres":
		return postgres.NewPostgresTranscriptStore(ctx, postgres.PostgresOptions{ConnString: cfg.PostgresURL})
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// sessionID derives the session name from the transcript path, so the
// file backend writes exactly that file.
func sessionID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func main() {
	logger := log.New("memory_agent")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("%v", err)
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.OpenAIKey),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		logger.Fatal("failed to create model: %v", err)
	}

	runnable, err := agent.NewChatGraph(model)
	if err != nil {
		logger.Fatal("failed to compile graph: %v", err)
	}

	ctx := context.Background()

	transcripts, err := newTranscriptStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open transcript store: %v", err)
	}
	defer transcripts.Close()

	session := sessionID(cfg.TranscriptPath)
	history := []llms.MessageContent{}

	previous, err := transcripts.Load(ctx, session)
	switch {
	case err == nil:
		history = previous.Messages
		logger.Info("loaded %d messages from previous session", len(history))
		fmt.Println(chat.RenderHistory(history, len(history)))
	case errors.Is(err, store.ErrNotFound):
		logger.Info("starting a new session")
	default:
		logger.Fatal("failed to load transcript: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("You: ")
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		input := strings.TrimSpace(line)
		if strings.EqualFold(input, "exit") {
			break
		}
		if input == "" {
			fmt.Print("You: ")
			continue
		}

		history = append(history, chat.Human(input))
		result, err := runnable.Invoke(ctx, agent.InitialState(history))
		if err != nil {
			logger.Error("graph invocation failed: %v", err)
			fmt.Print("You: ")
			continue
		}

		history, err = agent.Messages(result)
		if err != nil {
			logger.Fatal("%v", err)
		}
		reply, err := agent.LastText(result)
		if err != nil {
			logger.Fatal("%v", err)
		}
		fmt.Println(chat.RenderMessage(chat.AI(reply)))

		// Show the full conversation so far, as a memory aid.
		fmt.Println("\nCurrent Conversation History:")
		fmt.Println(chat.RenderHistory(history, 0))
		fmt.Print("You: ")
	}

	if err := transcripts.Save(ctx, &store.Transcript{SessionID: session, Messages: history}); err != nil {
		logger.Fatal("failed to save transcript: %v", err)
	}
	logger.Info("conversation saved to session %q", session)
}
