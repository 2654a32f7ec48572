package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/structcodes/assistant/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dsn)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListCalls(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	records := []*domain.CallRecord{
		{
			CallID:      "c1",
			Kind:        domain.CallKindChat,
			CodeContext: domain.CodeContextSBCGeneral,
			Model:       "gemini-2.5-flash",
			LatencyMs:   120,
			TotalTokens: 42,
			Status:      domain.CallStatusSucceeded,
			CreatedAt:   time.Now().Add(-time.Minute),
		},
		{
			CallID:      "c2",
			Kind:        domain.CallKindChecklist,
			CodeContext: domain.CodeContextACI318,
			Model:       "gemini-2.5-flash",
			LatencyMs:   300,
			Status:      domain.CallStatusFailed,
			ErrorKind:   "quota",
			CreatedAt:   time.Now(),
		},
	}
	for _, rec := range records {
		if err := s.RecordCall(ctx, rec); err != nil {
			t.Fatalf("RecordCall failed: %v", err)
		}
	}

	got, err := s.ListCalls(ctx, 10)
	if err != nil {
		t.Fatalf("ListCalls failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	// Newest first.
	if got[0].CallID != "c2" || got[1].CallID != "c1" {
		t.Fatalf("unexpected order: %s, %s", got[0].CallID, got[1].CallID)
	}
	if got[0].ErrorKind != "quota" || got[0].Status != domain.CallStatusFailed {
		t.Fatalf("unexpected failed record: %+v", got[0])
	}
	if got[1].TotalTokens != 42 {
		t.Fatalf("unexpected token count: %+v", got[1])
	}
}

func TestListCallsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rec := &domain.CallRecord{
			CallID:      "c" + string(rune('1'+i)),
			Kind:        domain.CallKindChat,
			CodeContext: domain.CodeContextSBCGeneral,
			Model:       "gemini-2.5-flash",
			Status:      domain.CallStatusSucceeded,
			CreatedAt:   time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := s.RecordCall(ctx, rec); err != nil {
			t.Fatalf("RecordCall failed: %v", err)
		}
	}

	got, err := s.ListCalls(ctx, 3)
	if err != nil {
		t.Fatalf("ListCalls failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
}
