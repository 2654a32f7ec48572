// Package api provides HTTP handlers for the assistant backend.
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/structcodes/assistant/service"
)

// Handler handles HTTP requests.
type Handler struct {
	svc *service.Service
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/chat", h.Chat)
	e.POST("/v1/checklists", h.ResolveChecklist)

	e.GET("/v1/instructions/chat", h.ChatInstruction)
	e.GET("/v1/instructions/inspector", h.InspectorInstruction)
	e.GET("/v1/elements", h.ListElements)
	e.GET("/v1/calls", h.ListCalls)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// writeServiceError maps a service failure to an HTTP response. RequestErrors
// carry a fixed user-facing message and map to 502; anything else is a 500.
func writeServiceError(c echo.Context, err error) error {
	var reqErr *service.RequestError
	if errors.As(err, &reqErr) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": reqErr.UserMessage})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}
