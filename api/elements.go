package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/structcodes/assistant/checklist"
)

// ListElements returns the element registry the UI selects from.
// GET /v1/elements
func (h *Handler) ListElements(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"groups": checklist.Registry,
	})
}
