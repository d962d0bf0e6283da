// Package file persists transcripts as plain-text log files, one file per
// session, in the conversation-log format the memory agent prints.
package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/store"
)

// FileTranscriptStore writes each session to <dir>/<session>.txt.
type FileTranscriptStore struct {
	dir string
}

// NewFileTranscriptStore creates a file store rooted at dir, creating it if
// needed.
func NewFileTranscriptStore(dir string) (*FileTranscriptStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileTranscriptStore{dir: dir}, nil
}

func (s *FileTranscriptStore) path(sessionID string) string {
	return filepath.Join(s.dir, sessionID+".txt")
}

// Save writes the transcript log file for the session.
func (s *FileTranscriptStore) Save(ctx context.Context, t *store.Transcript) error {
	store.Prepare(t)
	content := chat.FormatTranscript(t.Messages)
	return os.WriteFile(s.path(t.SessionID), []byte(content), 0o644)
}

// Load reads a session's log file back into a transcript.
func (s *FileTranscriptStore) Load(ctx context.Context, sessionID string) (*store.Transcript, error) {
	f, err := os.Open(s.path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	messages, err := chat.ParseTranscript(f)
	if err != nil {
		return nil, err
	}

	return &store.Transcript{
		SessionID: sessionID,
		Messages:  messages,
		UpdatedAt: info.ModTime(),
	}, nil
}

// Delete removes a session's log file.
func (s *FileTranscriptStore) Delete(ctx context.Context, sessionID string) error {
	err := os.Remove(s.path(sessionID))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op.
func (s *FileTranscriptStore) Close() error {
	return nil
}
