package service

import (
	"context"
	"log"
	"time"

	"github.com/structcodes/assistant/domain"
	"github.com/structcodes/assistant/genai"
	"github.com/structcodes/assistant/prompt"
)

// BuildAndSend serializes the conversation history plus the new turn into a
// single backend request and returns the answer text with any cited sources.
// It never mutates history; the caller appends the resulting message.
func (s *Service) BuildAndSend(ctx context.Context, history []domain.Message, newTurn domain.Message, codeContext domain.CodeContext, mode domain.ModelMode) (*domain.ChatResult, error) {
	profile := resolveMode(mode)

	temperature := chatTemperature
	topP := chatTopP
	topK := chatTopK
	genConfig := &genai.GenerationConfig{
		Temperature: &temperature,
		TopP:        &topP,
		TopK:        &topK,
	}
	if profile.ThinkingBudget > 0 {
		genConfig.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: profile.ThinkingBudget}
	}

	req := &genai.GenerateContentRequest{
		Model:    profile.ModelID,
		Contents: serializeHistory(append(append([]domain.Message{}, history...), newTurn)),
		SystemInstruction: &genai.Content{
			Parts: []genai.Part{{Text: prompt.SelectChatInstruction(codeContext)}},
		},
		GenerationConfig: genConfig,
		Tools:            []genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	start := time.Now()
	resp, err := s.client.GenerateContent(ctx, req)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		kind := genai.KindOf(err)
		log.Printf("ERROR: chat model call failed (model=%s, kind=%s): %v", profile.ModelID, kind, err)
		s.recordCall(ctx, &domain.CallRecord{
			Kind:        domain.CallKindChat,
			CodeContext: codeContext,
			Model:       profile.ModelID,
			LatencyMs:   latency,
			Status:      domain.CallStatusFailed,
			ErrorKind:   string(kind),
		})
		if s.metrics != nil {
			s.metrics.ChatRequests.WithLabelValues(string(mode), "failure").Inc()
			s.metrics.BackendFailures.WithLabelValues(string(kind)).Inc()
		}
		return nil, newRequestError(chatErrorMessage, err)
	}

	rec := &domain.CallRecord{
		Kind:        domain.CallKindChat,
		CodeContext: codeContext,
		Model:       profile.ModelID,
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
		s.metrics.ChatRequests.WithLabelValues(string(mode), "success").Inc()
	}

	text := resp.Text()
	if text == "" {
		text = chatFallbackText
	}

	links := []domain.GroundingLink{}
	for _, chunk := range resp.GroundingChunks() {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = defaultLinkTitle
		}
		links = append(links, domain.GroundingLink{Title: title, URL: chunk.Web.URI})
	}

	return &domain.ChatResult{Text: text, Links: links}, nil
}

// serializeHistory converts messages into role-tagged content entries. Each
// entry carries the text part first, then one inline part per attachment in
// original order.
func serializeHistory(messages []domain.Message) []genai.Content {
	contents := make([]genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Role == domain.RoleModel {
			role = "model"
		}

		var parts []genai.Part
		if msg.Text != "" || len(msg.Attachments) == 0 {
			parts = append(parts, genai.Part{Text: msg.Text})
		}
		for _, att := range msg.Attachments {
			parts = append(parts, genai.Part{
				InlineData: &genai.InlineData{MimeType: att.MimeType, Data: att.Data},
			})
		}

		contents = append(contents, genai.Content{Role: role, Parts: parts})
	}
	return contents
}
