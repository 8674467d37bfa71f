package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dantalabs/leadscout/internal/dto"
	"github.com/dantalabs/leadscout/internal/service/draft"
)

// DraftGenerator produces a cold-email draft for a prospect.
type DraftGenerator interface {
	Generate(ctx context.Context, req dto.DraftRequest) (*dto.Draft, error)
}

// DraftHandler exposes the outreach draft endpoint.
type DraftHandler struct {
	drafts DraftGenerator
}

// NewDraftHandler creates a new handler instance. A nil generator means the
// AI credential was never configured; requests then fail before any call.
func NewDraftHandler(drafts DraftGenerator) *DraftHandler {
	return &DraftHandler{drafts: drafts}
}

// Draft handles POST /api/draft requests.
func (h *DraftHandler) Draft(c echo.Context) error {
	if h.drafts == nil {
		return Error(c, http.StatusInternalServerError, "GOOGLE_AI_API_KEY is not configured")
	}

	var req dto.DraftRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.ContactName = strings.TrimSpace(req.ContactName)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if req.ContactName == "" || req.CompanyName == "" {
		return Error(c, http.StatusBadRequest, "contactName and companyName are required")
	}

	result, err := h.drafts.Generate(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, draft.ErrMalformedDraft) {
			return SoftFailure(c, "Could not generate a valid draft")
		}
		return Error(c, http.StatusBadGateway, err.Error())
	}

	return Success(c, http.StatusOK, result)
}
