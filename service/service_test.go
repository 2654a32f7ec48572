package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/structcodes/assistant/domain"
	"github.com/structcodes/assistant/genai"
)

type stubClient struct {
	lastReq *genai.GenerateContentRequest
	resp    *genai.GenerateContentResponse
	err     error
	calls   int
}

func (c *stubClient) GenerateContent(ctx context.Context, req *genai.GenerateContentRequest) (*genai.GenerateContentResponse, error) {
	c.calls++
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return c.resp, nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []genai.Part{{Text: text}}}},
		},
	}
}

func TestModeTable(t *testing.T) {
	tests := []struct {
		mode           domain.ModelMode
		model          string
		thinkingBudget int
	}{
		{domain.ModelModeFast, "gemini-2.5-flash-lite", 0},
		{domain.ModelModeStandard, "gemini-2.5-flash", 0},
		{domain.ModelModeDeepThinking, "gemini-3-pro-preview", 32768},
	}

	for _, tt := range tests {
		client := &stubClient{resp: textResponse("ok")}
		svc := New(client, nil, nil)

		_, err := svc.BuildAndSend(context.Background(), nil,
			domain.Message{Role: domain.RoleUser, Text: "hi"},
			domain.CodeContextSBCGeneral, tt.mode)
		if err != nil {
			t.Fatalf("%s: BuildAndSend failed: %v", tt.mode, err)
		}

		req := client.lastReq
		if req.Model != tt.model {
			t.Errorf("%s: expected model %s, got %s", tt.mode, tt.model, req.Model)
		}
		cfg := req.GenerationConfig
		if cfg == nil || cfg.Temperature == nil || *cfg.Temperature != 0.2 {
			t.Errorf("%s: unexpected temperature: %+v", tt.mode, cfg)
		}
		if *cfg.TopP != 0.8 || *cfg.TopK != 40 {
			t.Errorf("%s: unexpected sampling params: %+v", tt.mode, cfg)
		}
		if cfg.MaxOutputTokens != nil {
			t.Errorf("%s: output cap must not be set", tt.mode)
		}
		if tt.thinkingBudget > 0 {
			if cfg.ThinkingConfig == nil || cfg.ThinkingConfig.ThinkingBudget != tt.thinkingBudget {
				t.Errorf("%s: expected thinking budget %d, got %+v", tt.mode, tt.thinkingBudget, cfg.ThinkingConfig)
			}
		} else if cfg.ThinkingConfig != nil {
			t.Errorf("%s: thinking config must not be set", tt.mode)
		}
		if len(req.Tools) != 1 || req.Tools[0].GoogleSearch == nil {
			t.Errorf("%s: google search tool missing", tt.mode)
		}
	}
}

func TestHistorySerializationOrder(t *testing.T) {
	history := []domain.Message{
		{Role: domain.RoleUser, Text: "q1"},
		{Role: domain.RoleModel, Text: "a1"},
		{Role: domain.RoleUser, Text: "q2"},
		{Role: domain.RoleModel, Text: "a2"},
	}
	newTurn := domain.Message{Role: domain.RoleUser, Text: "q3"}

	client := &stubClient{resp: textResponse("a3")}
	svc := New(client, nil, nil)
	if _, err := svc.BuildAndSend(context.Background(), history, newTurn, domain.CodeContextSBCGeneral, domain.ModelModeStandard); err != nil {
		t.Fatalf("BuildAndSend failed: %v", err)
	}

	contents := client.lastReq.Contents
	if len(contents) != 5 {
		t.Fatalf("expected 5 content entries, got %d", len(contents))
	}
	wantRoles := []string{"user", "model", "user", "model", "user"}
	wantTexts := []string{"q1", "a1", "q2", "a2", "q3"}
	for i, c := range contents {
		if c.Role != wantRoles[i] {
			t.Errorf("entry %d: expected role %s, got %s", i, wantRoles[i], c.Role)
		}
		if len(c.Parts) != 1 || c.Parts[0].Text != wantTexts[i] {
			t.Errorf("entry %d: expected text %q, got %+v", i, wantTexts[i], c.Parts)
		}
	}
	if len(history) != 4 {
		t.Fatal("history must not be mutated")
	}
}

func TestAttachmentSerialization(t *testing.T) {
	newTurn := domain.Message{
		Role: domain.RoleUser,
		Text: "check this drawing",
		Attachments: []domain.Attachment{
			{MimeType: "image/png", Data: "aGVsbG8="},
			{MimeType: "application/pdf", Data: "d29ybGQ="},
		},
	}

	client := &stubClient{resp: textResponse("ok")}
	svc := New(client, nil, nil)
	if _, err := svc.BuildAndSend(context.Background(), nil, newTurn, domain.CodeContextSBCGeneral, domain.ModelModeStandard); err != nil {
		t.Fatalf("BuildAndSend failed: %v", err)
	}

	parts := client.lastReq.Contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	if parts[0].Text != "check this drawing" || parts[0].InlineData != nil {
		t.Fatalf("first part must be the text segment: %+v", parts[0])
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MimeType != "image/png" {
		t.Fatalf("unexpected second part: %+v", parts[1])
	}
	if parts[2].InlineData == nil || parts[2].InlineData.MimeType != "application/pdf" {
		t.Fatalf("unexpected third part: %+v", parts[2])
	}
}

func TestNoAttachmentsSingleTextPart(t *testing.T) {
	client := &stubClient{resp: textResponse("ok")}
	svc := New(client, nil, nil)
	if _, err := svc.BuildAndSend(context.Background(), nil,
		domain.Message{Role: domain.RoleUser, Text: "plain"},
		domain.CodeContextSBCGeneral, domain.ModelModeFast); err != nil {
		t.Fatalf("BuildAndSend failed: %v", err)
	}

	parts := client.lastReq.Contents[0].Parts
	if len(parts) != 1 || parts[0].Text != "plain" {
		t.Fatalf("expected one text part, got %+v", parts)
	}
}

func TestChatEndToEndACI(t *testing.T) {
	client := &stubClient{resp: textResponse("The minimum cover is 42.5mm per Table 20.6.1.3.1.")}
	svc := New(client, nil, nil)

	result, err := svc.BuildAndSend(context.Background(), nil,
		domain.Message{Role: domain.RoleUser, Text: "What is minimum concrete cover per ACI 318-19 Table 20.6.1.3.1?"},
		domain.CodeContextACI318, domain.ModelModeStandard)
	if err != nil {
		t.Fatalf("BuildAndSend failed: %v", err)
	}

	if client.lastReq.Model != "gemini-2.5-flash" {
		t.Errorf("expected default-tier model, got %s", client.lastReq.Model)
	}
	instruction := client.lastReq.SystemInstruction.Parts[0].Text
	if !strings.Contains(instruction, "ACI 318-19") {
		t.Error("system instruction must reference ACI 318-19")
	}
	if strings.Contains(instruction, "SBC 1101") {
		t.Error("ACI instruction must not reference SBC 1101")
	}
	if !strings.Contains(result.Text, "42.5mm") {
		t.Errorf("unexpected answer text: %q", result.Text)
	}
	if len(result.Links) != 0 {
		t.Errorf("expected no links, got %+v", result.Links)
	}
}

func TestChatEmptyAnswerFallback(t *testing.T) {
	client := &stubClient{resp: &genai.GenerateContentResponse{}}
	svc := New(client, nil, nil)

	result, err := svc.BuildAndSend(context.Background(), nil,
		domain.Message{Role: domain.RoleUser, Text: "hi"},
		domain.CodeContextSBCGeneral, domain.ModelModeStandard)
	if err != nil {
		t.Fatalf("empty answer must not be an error: %v", err)
	}
	if result.Text != "Sorry, I could not extract an answer from the available sources." {
		t.Fatalf("unexpected fallback text: %q", result.Text)
	}
}

func TestChatGroundingLinkTitleDefault(t *testing.T) {
	resp := textResponse("answer")
	resp.Candidates[0].GroundingMetadata = &genai.GroundingMetadata{
		GroundingChunks: []genai.GroundingChunk{
			{Web: &genai.WebSource{URI: "https://sbc.gov.sa", Title: "SBC Portal"}},
			{Web: &genai.WebSource{URI: "https://example.org"}},
			{Web: nil},
		},
	}
	client := &stubClient{resp: resp}
	svc := New(client, nil, nil)

	result, err := svc.BuildAndSend(context.Background(), nil,
		domain.Message{Role: domain.RoleUser, Text: "hi"},
		domain.CodeContextSBCGeneral, domain.ModelModeStandard)
	if err != nil {
		t.Fatalf("BuildAndSend failed: %v", err)
	}
	if len(result.Links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(result.Links))
	}
	if result.Links[0].Title != "SBC Portal" || result.Links[0].URL != "https://sbc.gov.sa" {
		t.Errorf("unexpected first link: %+v", result.Links[0])
	}
	if result.Links[1].Title != "Source Reference" {
		t.Errorf("missing title must default to Source Reference: %+v", result.Links[1])
	}
}

func TestChatFailureCollapsesToRequestError(t *testing.T) {
	backendErr := genai.NewAPIError(genai.KindQuota, errors.New("quota exhausted: project 12345 rate limited"))
	client := &stubClient{err: backendErr}
	svc := New(client, nil, nil)

	_, err := svc.BuildAndSend(context.Background(), nil,
		domain.Message{Role: domain.RoleUser, Text: "hi"},
		domain.CodeContextSBCGeneral, domain.ModelModeStandard)
	if err == nil {
		t.Fatal("expected error")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if reqErr.Kind != genai.KindQuota {
		t.Errorf("expected quota kind, got %s", reqErr.Kind)
	}
	if reqErr.UserMessage != "Service is currently busy. Please try again in a moment." {
		t.Errorf("unexpected user message: %q", reqErr.UserMessage)
	}
	if strings.Contains(err.Error(), "quota exhausted") {
		t.Error("raw backend error must not leak into the user-facing message")
	}
}
