package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Archiver copies conversation turns to durable storage. The in-memory store
// stays authoritative; the archive is write-only from the service's point of
// view and exists for offline inspection of chat history.
type Archiver interface {
	SaveTurn(ctx context.Context, sessionID string, turn Turn) error
	Close() error
}

// PostgresArchiver persists turns in PostgreSQL.
type PostgresArchiver struct {
	pool *pgxpool.Pool
}

// NewArchiver returns a postgres archiver when a database URL is configured,
// otherwise nil (archival disabled).
func NewArchiver(ctx context.Context, databaseURL string) (Archiver, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, nil
	}
	return NewPostgresArchiver(ctx, databaseURL)
}

func NewPostgresArchiver(ctx context.Context, databaseURL string) (*PostgresArchiver, error) {
	pool, err := pgxpool.New(ctx, strings.TrimSpace(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := initTurnSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresArchiver{pool: pool}, nil
}

func initTurnSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS chat_turns (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_chat_turns_session_created ON chat_turns (session_id, created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init turn schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

func (a *PostgresArchiver) SaveTurn(ctx context.Context, sessionID string, turn Turn) error {
	ts := turn.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := a.pool.Exec(ctx,
		`INSERT INTO chat_turns (id, session_id, role, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.NewString(),
		sessionID,
		turn.Role,
		turn.Content,
		ts,
	)
	if err != nil {
		return fmt.Errorf("save turn: %w", err)
	}
	return nil
}

func (a *PostgresArchiver) Close() error {
	a.pool.Close()
	return nil
}
