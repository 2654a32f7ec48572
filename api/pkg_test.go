package api

import (
	"context"
	"testing"

	"github.com/structcodes/assistant/genai"
	"github.com/structcodes/assistant/service"
)

// fakeClient is a canned genai client for handler tests.
type fakeClient struct {
	text string
	err  error
}

func (f *fakeClient) GenerateContent(ctx context.Context, req *genai.GenerateContentRequest) (*genai.GenerateContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []genai.Part{{Text: f.text}}}},
		},
	}, nil
}

func newTestHandler(t *testing.T, client genai.Client) *Handler {
	t.Helper()
	return NewHandler(service.New(client, nil, nil))
}
