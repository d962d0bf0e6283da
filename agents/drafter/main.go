// Command drafter is a collaborative document editor. The model drafts
// and revises a shared document through update/save tools, and the
// session ends once the document has been saved to disk.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/tools"

	"github.com/most4f4/LangGraph-from-Scratch/agent"
	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/config"
	"github.com/most4f4/LangGraph-from-Scratch/log"
	agenttools "github.com/most4f4/LangGraph-from-Scratch/tools"
)

func main() {
	logger := log.New("drafter")

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

	doc := &agenttools.Document{}
	drafterTools := []tools.Tool{
		agenttools.UpdateTool{Doc: doc},
		agenttools.SaveTool{Doc: doc},
	}

	reader := bufio.NewReader(os.Stdin)
	runnable, err := agent.NewDrafterGraph(model, doc, drafterTools, agent.DrafterOptions{
		Prompt: func(ctx context.Context) (string, error) {
			fmt.Print("\nWhat would you like to do with the document? ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", err
			}
			return strings.TrimSpace(line), nil
		},
		OnStep: func(msg llms.MessageContent) {
			fmt.Println(chat.RenderMessage(msg))
		},
	})
	if err != nil {
		logger.Fatal("failed to compile graph: %v", err)
	}

	fmt.Println(chat.RenderBanner("DRAFTER"))

	ctx := context.Background()
	if _, err := runnable.Invoke(ctx, agent.InitialState(nil)); err != nil {
		logger.Fatal("graph invocation failed: %v", err)
	}

	fmt.Println(chat.RenderBanner("DRAFTER FINISHED"))
}
