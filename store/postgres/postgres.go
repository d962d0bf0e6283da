// Package postgres persists transcripts in PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/store"
)

// DBPool defines the interface for the database connection pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresTranscriptStore implements store.TranscriptStore using PostgreSQL.
type PostgresTranscriptStore struct {
	pool      DBPool
	tableName string
}

// PostgresOptions configuration for the Postgres connection.
type PostgresOptions struct {
	ConnString string
	TableName  string // Default "transcripts"
}

// NewPostgresTranscriptStore creates a new Postgres transcript store.
func NewPostgresTranscriptStore(ctx context.Context, opts PostgresOptions) (*PostgresTranscriptStore, error) {
	pool, err := pgxpool.New(ctx, opts.ConnString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	s := NewPostgresTranscriptStoreWithPool(pool, opts.TableName)
	if err := s.InitSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresTranscriptStoreWithPool creates a store with an existing pool.
// Useful for testing with mocks.
func NewPostgresTranscriptStoreWithPool(pool DBPool, tableName string) *PostgresTranscriptStore {
	if tableName == "" {
		tableName = "transcripts"
	}
	return &PostgresTranscriptStore{
		pool:      pool,
		tableName: tableName,
	}
}

// InitSchema creates the transcripts table if it doesn't exist.
func (s *PostgresTranscriptStore) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id TEXT PRIMARY KEY,
			revision_id TEXT NOT NULL,
			transcript TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`, s.tableName)

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Save stores the transcript, replacing the session's previous revision.
func (s *PostgresTranscriptStore) Save(ctx context.Context, t *store.Transcript) error {
	store.Prepare(t)

	query := fmt.Sprintf(`
		INSERT INTO %s (session_id, revision_id, transcript, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id) DO UPDATE SET
			revision_id = excluded.revision_id,
			transcript = excluded.transcript,
			updated_at = excluded.updated_at
	`, s.tableName)

	_, err := s.pool.Exec(ctx, query,
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
func (s *PostgresTranscriptStore) Load(ctx context.Context, sessionID string) (*store.Transcript, error) {
	query := fmt.Sprintf(`
		SELECT revision_id, transcript, updated_at FROM %s WHERE session_id = $1
	`, s.tableName)

	t := &store.Transcript{SessionID: sessionID}
	var text string

	row := s.pool.QueryRow(ctx, query, sessionID)
	if err := row.Scan(&t.ID, &text, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
func (s *PostgresTranscriptStore) Delete(ctx context.Context, sessionID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE session_id = $1`, s.tableName)
	if _, err := s.pool.Exec(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete transcript: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresTranscriptStore) Close() error {
	s.pool.Close()
	return nil
}
