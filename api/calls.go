package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/structcodes/assistant/domain"
)

// ListCalls returns recent backend call audit records.
// GET /v1/calls?limit=
func (h *Handler) ListCalls(c echo.Context) error {
	ctx := c.Request().Context()

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = 50
	}

	calls, err := h.svc.ListCalls(ctx, limit)
	if err != nil {
		log.Printf("ERROR: failed to list calls: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list calls"})
	}
	if calls == nil {
		calls = []domain.CallRecord{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"calls": calls,
	})
}
