package domain

import "time"

// Attachment is a binary payload carried by a user message.
type Attachment struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
	Name     string `json:"name,omitempty"`
}

// GroundingLink is a source citation reported by the backend model.
type GroundingLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Message is a single conversation turn. Messages are immutable once created;
// the ordered sequence of messages is the conversation history.
type Message struct {
	MessageID      string          `json:"message_id"`
	Role           Role            `json:"role"`
	Text           string          `json:"text"`
	Attachments    []Attachment    `json:"attachments,omitempty"`
	GroundingLinks []GroundingLink `json:"grounding_links,omitempty"` // model turns only
	CreatedAt      time.Time       `json:"created_at"`
}

// ChatResult is the outcome of a successful chat turn.
type ChatResult struct {
	Text  string          `json:"text"`
	Links []GroundingLink `json:"links"`
}

// ChecklistRequest describes one Inspector invocation. ElementID is the stable
// machine key used for static lookup; ElementLabel is the localized display
// name substituted into the model prompt.
type ChecklistRequest struct {
	ElementID    string   `json:"element_id"`
	ElementLabel string   `json:"element_label"`
	BuildingType string   `json:"building_type"`
	Location     string   `json:"location"`
	Language     Language `json:"language"`
}

// ChecklistSource tells the caller how a checklist was produced.
type ChecklistSource string

const (
	ChecklistSourceStatic ChecklistSource = "static"
	ChecklistSourceModel  ChecklistSource = "model"
)

// ChecklistResult is the outcome of a checklist resolution.
type ChecklistResult struct {
	Markdown string          `json:"markdown"`
	Source   ChecklistSource `json:"source"`
}

// CallRecord is an audit row for one backend model invocation. It records
// operational facts only; conversation content is not persisted.
type CallRecord struct {
	CallID           string      `json:"call_id"`
	Kind             CallKind    `json:"kind"`
	CodeContext      CodeContext `json:"code_context"`
	Model            string      `json:"model"`
	LatencyMs        int64       `json:"latency_ms"`
	PromptTokens     int         `json:"prompt_tokens,omitempty"`
	CompletionTokens int         `json:"completion_tokens,omitempty"`
	TotalTokens      int         `json:"total_tokens,omitempty"`
	Status           CallStatus  `json:"status"`
	ErrorKind        string      `json:"error_kind,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}
