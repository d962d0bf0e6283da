// Package memory provides an in-process TranscriptStore, used as the
// default in tests and when no persistence is wanted.
package memory

import (
	"context"
	"sync"

	"github.com/most4f4/LangGraph-from-Scratch/store"
)

// MemoryTranscriptStore keeps transcripts in a map.
type MemoryTranscriptStore struct {
	mu          sync.RWMutex
	transcripts map[string]*store.Transcript
}

// NewMemoryTranscriptStore creates an empty in-memory store.
func NewMemoryTranscriptStore() *MemoryTranscriptStore {
	return &MemoryTranscriptStore{
		transcripts: make(map[string]*store.Transcript),
	}
}

// Save stores the transcript for its session.
func (s *MemoryTranscriptStore) Save(ctx context.Context, t *store.Transcript) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store.Prepare(t)
	copied := *t
	s.transcripts[t.SessionID] = &copied
	return nil
}

// Load retrieves the transcript for a session.
func (s *MemoryTranscriptStore) Load(ctx context.Context, sessionID string) (*store.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transcripts[sessionID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

// Delete removes a session's transcript.
func (s *MemoryTranscriptStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.transcripts, sessionID)
	return nil
}

// Close is a no-op.
func (s *MemoryTranscriptStore) Close() error {
	return nil
}
