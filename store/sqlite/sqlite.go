// Package sqlite persists transcripts in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/store"
)

// SqliteTranscriptStore implements store.TranscriptStore using SQLite.
type SqliteTranscriptStore struct {
	db        *sql.DB
	tableName string
}

// SqliteOptions configuration for the SQLite connection.
type SqliteOptions struct {
	Path      string
	TableName string // Default "transcripts"
}

// NewSqliteTranscriptStore opens (or creates) the database and its schema.
func NewSqliteTranscriptStore(opts SqliteOptions) (*SqliteTranscriptStore, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	tableName := opts.TableName
	if tableName == "" {
		tableName = "transcripts"
	}

	s := &SqliteTranscriptStore{
		db:        db,
		tableName: tableName,
	}

	if err := s.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SqliteTranscriptStore) initSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id TEXT PRIMARY KEY,
			revision_id TEXT NOT NULL,
			transcript TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save stores the transcript, replacing the session's previous revision.
func (s *SqliteTranscriptStore) Save(ctx context.Context, t *store.Transcript) error {
	store.Prepare(t)

	query := fmt.Sprintf(`
		INSERT INTO %s (session_id, revision_id, transcript, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			revision_id = excluded.revision_id,
			transcript = excluded.transcript,
			updated_at = excluded.updated_at
	`, s.tableName)

	_, err := s.db.ExecContext(ctx, query,
		t.SessionID,
		t.ID,
		chat.FormatTranscript(t.Messages),
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}
	return nil
}

// Load retrieves the transcript for a session.
func (s *SqliteTranscriptStore) Load(ctx context.Context, sessionID string) (*store.Transcript, error) {
	query := fmt.Sprintf(`
		SELECT revision_id, transcript, updated_at FROM %s WHERE session_id = ?
	`, s.tableName)

	t := &store.Transcript{SessionID: sessionID}
	var text string

	row := s.db.QueryRowContext(ctx, query, sessionID)
	if err := row.Scan(&t.ID, &text, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	messages, err := chat.ParseTranscript(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	t.Messages = messages

	return t, nil
}

// Delete removes a session's transcript.
func (s *SqliteTranscriptStore) Delete(ctx context.Context, sessionID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE session_id = ?`, s.tableName)
	if _, err := s.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete transcript: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SqliteTranscriptStore) Close() error {
	return s.db.Close()
}
