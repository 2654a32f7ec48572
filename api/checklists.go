package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/structcodes/assistant/domain"
)

// ChecklistHTTPRequest is the body of POST /v1/checklists.
type ChecklistHTTPRequest struct {
	ElementID    string             `json:"element_id"`
	ElementLabel string             `json:"element_label"`
	BuildingType string             `json:"building_type"`
	Location     string             `json:"location"`
	Language     domain.Language    `json:"language"`
	Context      domain.CodeContext `json:"context"`
}

// ResolveChecklist serves an inspection checklist.
// POST /v1/checklists
func (h *Handler) ResolveChecklist(c echo.Context) error {
	ctx := c.Request().Context()

	var req ChecklistHTTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.ElementID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "element_id required"})
	}
	if !req.Language.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid language"})
	}
	if !req.Context.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid context"})
	}

	result, err := h.svc.ResolveChecklist(ctx, domain.ChecklistRequest{
		ElementID:    req.ElementID,
		ElementLabel: req.ElementLabel,
		BuildingType: req.BuildingType,
		Location:     req.Location,
		Language:     req.Language,
	}, req.Context)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
