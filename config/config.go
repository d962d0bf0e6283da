// Package config loads configuration for the agent examples from environment
// variables, with an optional .env file in the working directory.
package config

import (
	"errors"
	"os"
	"strings"
)

// ErrMissingAPIKey is returned when no OpenAI API key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable is required")

// Config holds the application configuration shared by all agents.
type Config struct {
	// LLM configuration
	OpenAIKey     string
	Model         string
	OpenAIBaseURL string

	// Embeddings configuration (RAG agent)
	EmbeddingModel string

	// Transcript persistence (memory agent)
	TranscriptPath string
	StoreBackend   string // "file", "memory", "sqlite", "redis", "postgres"
	SQLitePath     string
	RedisAddr      string
	PostgresURL    string

	// RAG configuration
	PDFPath      string
	ChromaURL    string
	Collection   string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

// Load reads the .env file if present and returns configuration with
// sensible defaults.
func Load() Config {
	LoadEnvFile(".env")

	return Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		EmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		TranscriptPath: getEnv("TRANSCRIPT_PATH", "logging.txt"),
		StoreBackend:   getEnv("STORE_BACKEND", "file"),
		SQLitePath:     getEnv("SQLITE_PATH", "transcripts.db"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		PDFPath:        getEnv("PDF_PATH", "Stock_Market_Performance_2024.pdf"),
		ChromaURL:      os.Getenv("CHROMA_URL"),
		Collection:     getEnv("CHROMA_COLLECTION", "pdf_collection"),
		ChunkSize:      1000,
		ChunkOverlap:   100,
		TopK:           5,
	}
}

// Validate checks that required configuration is present.
func (c Config) Validate() error {
	if c.OpenAIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// LoadEnvFile loads KEY=VALUE pairs from the given file into the process
// environment. Missing files are ignored; existing variables are not
// overwritten.
func LoadEnvFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
