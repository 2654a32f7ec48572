package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/structcodes/assistant/domain"
	"github.com/structcodes/assistant/prompt"
)

// ChatInstruction returns the active chat system instruction for a context.
// GET /v1/instructions/chat?context=
func (h *Handler) ChatInstruction(c echo.Context) error {
	context := domain.CodeContext(c.QueryParam("context"))
	if !context.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid context"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"context":     string(context),
		"instruction": prompt.SelectChatInstruction(context),
	})
}

// InspectorInstruction returns the inspector system instruction for a
// context/language pair.
// GET /v1/instructions/inspector?context=&lang=
func (h *Handler) InspectorInstruction(c echo.Context) error {
	context := domain.CodeContext(c.QueryParam("context"))
	if !context.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid context"})
	}
	lang := domain.Language(c.QueryParam("lang"))
	if !lang.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid lang"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"context":     string(context),
		"lang":        string(lang),
		"instruction": prompt.SelectInspectorInstruction(context, lang),
	})
}
