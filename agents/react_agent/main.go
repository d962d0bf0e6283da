// Command react_agent runs a tool-calling loop over calculator tools.
// The model reasons about the request, calls add/subtract/multiply/divide
// as needed, and answers once no more tool calls are pending.
package main

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/tools"

	"github.com/most4f4/LangGraph-from-Scratch/agent"
	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/config"
	"github.com/most4f4/LangGraph-from-Scratch/log"
	agenttools "github.com/most4f4/LangGraph-from-Scratch/tools"
)

const systemPrompt = "You are my AI assistant, please answer my query to the best of your ability."

func main() {
	logger := log.New("react_agent")

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

	calculator := []tools.Tool{
		agenttools.AddTool{},
		agenttools.SubtractTool{},
		agenttools.MultiplyTool{},
		agenttools.DivideTool{},
	}

	runnable, err := agent.NewReactGraph(model, calculator, agent.ReactOptions{
		SystemPrompt: systemPrompt,
		OnStep: func(msg llms.MessageContent) {
			fmt.Println(chat.RenderMessage(msg))
		},
	})
	if err != nil {
		logger.Fatal("failed to compile graph: %v", err)
	}

	ctx := context.Background()
	input := []llms.MessageContent{
		chat.Human("Add 40 + 12 and then multiply the result by 6. Also tell me a joke please."),
	}

	if _, err := runnable.Invoke(ctx, agent.InitialState(input)); err != nil {
		logger.Fatal("graph invocation failed: %v", err)
	}
}
