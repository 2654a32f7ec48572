package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/structcodes/assistant/domain"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS model_calls (
			call_id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			code_context TEXT NOT NULL,
			model TEXT NOT NULL,
			latency_ms INTEGER NOT NULL,
			prompt_tokens INTEGER NOT NULL DEFAULT 0,
			completion_tokens INTEGER NOT NULL DEFAULT 0,
			total_tokens INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error_kind TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_model_calls_created ON model_calls(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RecordCall persists one backend call record.
func (s *SQLiteStore) RecordCall(ctx context.Context, record *domain.CallRecord) error {
	var errorKind sql.NullString
	if record.ErrorKind != "" {
		errorKind = sql.NullString{String: record.ErrorKind, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO model_calls (call_id, kind, code_context, model, latency_ms, prompt_tokens, completion_tokens, total_tokens, status, error_kind, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.CallID, record.Kind, record.CodeContext, record.Model, record.LatencyMs,
		record.PromptTokens, record.CompletionTokens, record.TotalTokens,
		record.Status, errorKind, record.CreatedAt)
	return err
}

// ListCalls returns the most recent call records, newest first.
func (s *SQLiteStore) ListCalls(ctx context.Context, limit int) ([]domain.CallRecord, error) {
	query := `SELECT call_id, kind, code_context, model, latency_ms, prompt_tokens, completion_tokens, total_tokens, status, error_kind, created_at
		FROM model_calls ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.CallRecord
	for rows.Next() {
		var rec domain.CallRecord
		var errorKind sql.NullString
		if err := rows.Scan(&rec.CallID, &rec.Kind, &rec.CodeContext, &rec.Model, &rec.LatencyMs,
			&rec.PromptTokens, &rec.CompletionTokens, &rec.TotalTokens,
			&rec.Status, &errorKind, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if errorKind.Valid {
			rec.ErrorKind = errorKind.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
