// Command chatbot is a minimal single-node conversation loop. Each turn
// sends only that turn's message to the model; nothing is remembered
// between turns.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/most4f4/LangGraph-from-Scratch/agent"
	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/config"
	"github.com/most4f4/LangGraph-from-Scratch/log"
)

func main() {
	logger := log.New("chatbot")

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
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter: ")
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
			fmt.Print("Enter: ")
			continue
		}

		// Each turn starts fresh with just the new message.
		turn := []llms.MessageContent{chat.Human(input)}
		result, err := runnable.Invoke(ctx, agent.InitialState(turn))
		if err != nil {
			logger.Error("graph invocation failed: %v", err)
			fmt.Print("Enter: ")
			continue
		}

		reply, err := agent.LastText(result)
		if err != nil {
			logger.Fatal("%v", err)
		}
		fmt.Println(chat.RenderMessage(chat.AI(reply)))
		fmt.Print("Enter: ")
	}
}
