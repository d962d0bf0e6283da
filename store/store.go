// Package store defines transcript persistence for the memory agent. A
// transcript is the plain-text conversation log described by the chat
// package; backends only differ in where that text lives.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

// ErrNotFound is returned when no transcript exists for a session.
var ErrNotFound = errors.New("transcript not found")

// Transcript is a saved conversation.
type Transcript struct {
	// ID identifies the saved revision.
	ID string
	// SessionID identifies the conversation across saves.
	SessionID string
	// Messages is the append-only conversation history.
	Messages []llms.MessageContent
	// UpdatedAt is when the transcript was last saved.
	UpdatedAt time.Time
}

// TranscriptStore persists conversation transcripts by session ID.
type TranscriptStore interface {
	// Save stores the transcript, replacing any previous revision for the
	// same session.
	Save(ctx context.Context, t *Transcript) error

	// Load retrieves the transcript for a session. Returns ErrNotFound
	// when the session has no saved conversation.
	Load(ctx context.Context, sessionID string) (*Transcript, error)

	// Delete removes a session's transcript.
	Delete(ctx context.Context, sessionID string) error

	// Close releases backend resources.
	Close() error
}

// Prepare stamps a new revision ID and save time on the transcript.
// Every backend calls it at the top of Save.
func Prepare(t *Transcript) {
	t.ID = uuid.New().String()
	t.UpdatedAt = time.Now()
}
