package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/structcodes/assistant/domain"
)

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	History     []domain.Message    `json:"history"`
	Text        string              `json:"text"`
	Attachments []domain.Attachment `json:"attachments,omitempty"`
	Context     domain.CodeContext  `json:"context"`
	Mode        domain.ModelMode    `json:"mode"`
}

// ChatResponse is the body returned by POST /v1/chat. UserMessage is the turn
// the builder created for the submitted input; ModelMessage is the answer the
// caller should append after it.
type ChatResponse struct {
	UserMessage  domain.Message `json:"user_message"`
	ModelMessage domain.Message `json:"model_message"`
}

// Chat handles a single chat turn.
// POST /v1/chat
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if !req.Context.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid context"})
	}
	if req.Mode == "" {
		req.Mode = domain.ModelModeStandard
	}
	if !req.Mode.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid mode"})
	}
	if req.Text == "" && len(req.Attachments) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text or attachments required"})
	}
	for _, msg := range req.History {
		if !msg.Role.Valid() {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid role in history"})
		}
	}

	newTurn := domain.Message{
		MessageID:   uuid.New().String(),
		Role:        domain.RoleUser,
		Text:        req.Text,
		Attachments: req.Attachments,
		CreatedAt:   time.Now().UTC(),
	}

	result, err := h.svc.BuildAndSend(ctx, req.History, newTurn, req.Context, req.Mode)
	if err != nil {
		return writeServiceError(c, err)
	}

	modelMessage := domain.Message{
		MessageID:      uuid.New().String(),
		Role:           domain.RoleModel,
		Text:           result.Text,
		GroundingLinks: result.Links,
		CreatedAt:      time.Now().UTC(),
	}

	return c.JSON(http.StatusOK, ChatResponse{
		UserMessage:  newTurn,
		ModelMessage: modelMessage,
	})
}
