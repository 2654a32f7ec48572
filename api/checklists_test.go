package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/structcodes/assistant/domain"
	"github.com/structcodes/assistant/genai"
)

func TestChecklistHandlerStaticHit(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &fakeClient{err: errors.New("unexpected backend call")})

	c, rec := postJSON(e, "/v1/checklists", `{
		"element_id": "beams",
		"element_label": "Beams",
		"building_type": "Villa",
		"location": "Riyadh",
		"language": "en",
		"context": "SBC_GENERAL"
	}`)
	if err := h.ResolveChecklist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp domain.ChecklistResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Source != domain.ChecklistSourceStatic {
		t.Fatalf("expected static source, got %s", resp.Source)
	}
	if resp.Markdown == "" {
		t.Fatal("static checklist must not be empty")
	}
}

func TestChecklistHandlerModelFallback(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &fakeClient{text: "| No. | Check Point |"})

	c, rec := postJSON(e, "/v1/checklists", `{
		"element_id": "stairs",
		"element_label": "Stairs",
		"building_type": "School",
		"location": "Jeddah",
		"language": "en",
		"context": "ACI_318"
	}`)
	if err := h.ResolveChecklist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp domain.ChecklistResult
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Source != domain.ChecklistSourceModel {
		t.Fatalf("expected model source, got %s", resp.Source)
	}
}

func TestChecklistHandlerValidation(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &fakeClient{text: "ok"})

	tests := []struct {
		name string
		body string
	}{
		{"missing element", `{"language":"en","context":"SBC_GENERAL"}`},
		{"invalid language", `{"element_id":"beams","language":"fr","context":"SBC_GENERAL"}`},
		{"invalid context", `{"element_id":"beams","language":"en","context":"BS_8110"}`},
	}
	for _, tt := range tests {
		c, rec := postJSON(e, "/v1/checklists", tt.body)
		if err := h.ResolveChecklist(c); err != nil {
			t.Fatalf("%s: handler error: %v", tt.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.name, rec.Code)
		}
	}
}

func TestChecklistHandlerBackendFailure(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t, &fakeClient{err: genai.NewAPIError(genai.KindNetwork, errors.New("dial tcp"))})

	c, rec := postJSON(e, "/v1/checklists", `{
		"element_id": "flat_slab",
		"language": "en",
		"context": "SBC_GENERAL"
	}`)
	if err := h.ResolveChecklist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Could not generate inspection checklist.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
