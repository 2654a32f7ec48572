// Package store persists audit records for backend model calls.
package store

import (
	"context"

	"github.com/structcodes/assistant/domain"
)

// Store is the persistence interface for call auditing.
type Store interface {
	// RecordCall persists one backend call record.
	RecordCall(ctx context.Context, record *domain.CallRecord) error

	// ListCalls returns the most recent call records, newest first.
	ListCalls(ctx context.Context, limit int) ([]domain.CallRecord, error)

	// Close releases the underlying database handle.
	Close() error
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
