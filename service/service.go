// Package service implements the conversation request builder and the
// checklist request resolver on top of the genai client.
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/structcodes/assistant/domain"
	"github.com/structcodes/assistant/genai"
	"github.com/structcodes/assistant/metrics"
	"github.com/structcodes/assistant/store"
)

// Service coordinates backend model calls, auditing and metrics. It holds no
// conversation state; history lives with the caller.
type Service struct {
	client  genai.Client
	store   store.Store
	metrics *metrics.Metrics
}

// New creates a new service.
func New(client genai.Client, st store.Store, m *metrics.Metrics) *Service {
	return &Service{
		client:  client,
		store:   st,
		metrics: m,
	}
}

// recordCall persists an audit row for one backend invocation. Audit failures
// are logged, never propagated; the model response already happened.
func (s *Service) recordCall(ctx context.Context, rec *domain.CallRecord) {
	if s.store == nil {
		return
	}
	rec.CallID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	if err := s.store.RecordCall(ctx, rec); err != nil {
		log.Printf("WARN: failed to record call audit: %v", err)
	}
}

// ListCalls returns recent audit records, newest first.
func (s *Service) ListCalls(ctx context.Context, limit int) ([]domain.CallRecord, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListCalls(ctx, limit)
}
