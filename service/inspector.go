package service

import (
	"context"
	"log"
	"time"

	"github.com/structcodes/assistant/checklist"
	"github.com/structcodes/assistant/domain"
	"github.com/structcodes/assistant/genai"
	"github.com/structcodes/assistant/prompt"
)

// ResolveChecklist serves a checklist for the requested element. Known
// element/language pairs resolve from the static table without a network
// call; everything else goes to the backend model as a single-turn request.
func (s *Service) ResolveChecklist(ctx context.Context, req domain.ChecklistRequest, codeContext domain.CodeContext) (*domain.ChecklistResult, error) {
	if doc, ok := checklist.Lookup(req.ElementID, string(req.Language)); ok {
		if s.metrics != nil {
			s.metrics.ChecklistRequests.WithLabelValues(string(domain.ChecklistSourceStatic), "success").Inc()
		}
		return &domain.ChecklistResult{Markdown: doc, Source: domain.ChecklistSourceStatic}, nil
	}

	temperature := checklistTemperature
	genReq := &genai.GenerateContentRequest{
		Model: defaultModelID,
		Contents: []genai.Content{
			{Role: "user", Parts: []genai.Part{{Text: prompt.InspectorPrompt(req, codeContext)}}},
		},
		SystemInstruction: &genai.Content{
			Parts: []genai.Part{{Text: prompt.SelectInspectorInstruction(codeContext, req.Language)}},
		},
		GenerationConfig: &genai.GenerationConfig{Temperature: &temperature},
	}

	start := time.Now()
	resp, err := s.client.GenerateContent(ctx, genReq)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		kind := genai.KindOf(err)
		log.Printf("ERROR: checklist model call failed (element=%s, kind=%s): %v", req.ElementID, kind, err)
		s.recordCall(ctx, &domain.CallRecord{
			Kind:        domain.CallKindChecklist,
			CodeContext: codeContext,
			Model:       defaultModelID,
			LatencyMs:   latency,
			Status:      domain.CallStatusFailed,
			ErrorKind:   string(kind),
		})
		if s.metrics != nil {
			s.metrics.ChecklistRequests.WithLabelValues(string(domain.ChecklistSourceModel), "failure").Inc()
			s.metrics.BackendFailures.WithLabelValues(string(kind)).Inc()
		}
		return nil, newRequestError(checklistErrorMessage, err)
	}

	rec := &domain.CallRecord{
		Kind:        domain.CallKindChecklist,
		CodeContext: codeContext,
		Model:       defaultModelID,
		LatencyMs:   latency,
		Status:      domain.CallStatusSucceeded,
	}
	if usage := resp.UsageMetadata; usage != nil {
		rec.PromptTokens = usage.PromptTokenCount
		rec.CompletionTokens = usage.CandidatesTokenCount
		rec.TotalTokens = usage.TotalTokenCount
	}
	s.recordCall(ctx, rec)
	if s.metrics != nil {
		s.metrics.ChecklistRequests.WithLabelValues(string(domain.ChecklistSourceModel), "success").Inc()
	}

	text := resp.Text()
	if text == "" {
		text = checklistFallbackText
	}
	return &domain.ChecklistResult{Markdown: text, Source: domain.ChecklistSourceModel}, nil
}
