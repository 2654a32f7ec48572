package genai

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of Client for local runs and testing.
type MockClient struct{}

// NewMockClient creates a new mock genai client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements Client.
var _ Client = (*MockClient)(nil)

// GenerateContent returns a canned response echoing the last user turn.
func (m *MockClient) GenerateContent(ctx context.Context, req *GenerateContentRequest) (*GenerateContentResponse, error) {
	var lastUserText string
	for i := len(req.Contents) - 1; i >= 0; i-- {
		if req.Contents[i].Role == "user" {
			for _, p := range req.Contents[i].Parts {
				if p.Text != "" {
					lastUserText = p.Text
					break
				}
			}
			break
		}
	}

	text := "[MOCK] This is a mock response from the genai client."
	if lastUserText != "" {
		text = fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUserText, 100))
	}

	return &GenerateContentResponse{
		Candidates: []Candidate{
			{
				Content: &Content{
					Role:  "model",
					Parts: []Part{{Text: text}},
				},
				FinishReason: "STOP",
			},
		},
		UsageMetadata: &UsageMetadata{
			PromptTokenCount:     estimateTokens(req),
			CandidatesTokenCount: len(text) / 4,
			TotalTokenCount:      estimateTokens(req) + len(text)/4,
		},
		ModelVersion: req.Model,
	}, nil
}

// estimateTokens provides a rough token count estimate.
func estimateTokens(req *GenerateContentRequest) int {
	total := 0
	for _, c := range req.Contents {
		for _, p := range c.Parts {
			total += len(p.Text) / 4
		}
	}
	return total
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
