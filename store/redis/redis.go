// Package redis persists transcripts in Redis, with an optional TTL for
// conversations that should expire.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/store"
)

// RedisTranscriptStore implements store.TranscriptStore using Redis.
type RedisTranscriptStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOptions configuration for the Redis connection.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // Key prefix, default "agents:"
	TTL      time.Duration // Expiration for transcripts, default 0 (no expiration)
}

// transcriptRecord is the JSON payload stored per session.
type transcriptRecord struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Transcript string    `json:"transcript"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewRedisTranscriptStore creates a new Redis transcript store.
func NewRedisTranscriptStore(opts RedisOptions) *RedisTranscriptStore {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "agents:"
	}

	return &RedisTranscriptStore{
		client: client,
		prefix: prefix,
		ttl:    opts.TTL,
	}
}

func (s *RedisTranscriptStore) key(sessionID string) string {
	return fmt.Sprintf("%stranscript:%s", s.prefix, sessionID)
}

// Save stores the transcript for its session.
func (s *RedisTranscriptStore) Save(ctx context.Context, t *store.Transcript) error {
	store.Prepare(t)

	record := transcriptRecord{
		ID:         t.ID,
		SessionID:  t.SessionID,
		Transcript: chat.FormatTranscript(t.Messages),
		UpdatedAt:  t.UpdatedAt,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	if err := s.client.Set(ctx, s.key(t.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save transcript to redis: %w", err)
	}
	return nil
}

// Load retrieves the transcript for a session.
func (s *RedisTranscriptStore) Load(ctx context.Context, sessionID string) (*store.Transcript, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load transcript from redis: %w", err)
	}

	var record transcriptRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript: %w", err)
	}

	messages, err := chat.ParseTranscript(strings.NewReader(record.Transcript))
	if err != nil {
		return nil, err
	}

	return &store.Transcript{
		ID:        record.ID,
		SessionID: record.SessionID,
		Messages:  messages,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

// Delete removes a session's transcript.
func (s *RedisTranscriptStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete transcript from redis: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (s *RedisTranscriptStore) Close() error {
	return s.client.Close()
}
