package circulars

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists circulars in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a postgres-backed store when configured, otherwise the
// seeded in-memory store.
func NewStore(ctx context.Context, databaseURL string) (Store, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return NewInMemoryStore(), nil
	}
	return NewPostgresStore(ctx, databaseURL)
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, strings.TrimSpace(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := initCircularSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func initCircularSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS circulars (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			source TEXT NOT NULL,
			source_url TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			relevance_score INTEGER NOT NULL DEFAULT 0,
			keywords TEXT[] NOT NULL DEFAULT '{}',
			published_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_circulars_city_published ON circulars (city, published_at DESC);`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init circular schema failed on %q: %w", stmt, err)
		}
	}
	return nil
}

func (s *PostgresStore) Add(ctx context.Context, c Circular) (Circular, error) {
	c = normalize(c)
	_, err := s.pool.Exec(ctx,
		`INSERT INTO circulars
			(id, title, content, summary, city, category, source, source_url,
			 priority, status, relevance_score, keywords, published_at, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.Title, c.Content, c.Summary, c.City, c.Category, c.Source,
		c.SourceURL, c.Priority, c.Status, c.RelevanceScore, c.Keywords,
		c.PublishedAt, c.CreatedAt,
	)
	if err != nil {
		return Circular{}, fmt.Errorf("insert circular: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) List(ctx context.Context, f Filter) ([]Circular, error) {
	query := `SELECT id, title, content, summary, city, category, source, source_url,
			priority, status, relevance_score, keywords, published_at, created_at
		 FROM circulars WHERE 1=1`
	var args []any
	idx := 1
	if f.City != "" {
		query += fmt.Sprintf(" AND lower(city) = lower($%d)", idx)
		args = append(args, f.City)
		idx++
	}
	if f.Category != "" {
		query += fmt.Sprintf(" AND lower(category) = lower($%d)", idx)
		args = append(args, f.Category)
		idx++
	}
	if f.Query != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR summary ILIKE $%d OR content ILIKE $%d)", idx, idx, idx)
		args = append(args, "%"+f.Query+"%")
		idx++
	}
	query += " ORDER BY published_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query circulars: %w", err)
	}
	defer rows.Close()

	var out []Circular
	for rows.Next() {
		var c Circular
		var published, created time.Time
		if err := rows.Scan(&c.ID, &c.Title, &c.Content, &c.Summary, &c.City,
			&c.Category, &c.Source, &c.SourceURL, &c.Priority, &c.Status,
			&c.RelevanceScore, &c.Keywords, &published, &created); err != nil {
			return nil, fmt.Errorf("scan circular row: %w", err)
		}
		c.PublishedAt = published
		c.CreatedAt = created
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate circular rows: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
