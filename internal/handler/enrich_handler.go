package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dantalabs/leadscout/internal/dto"
	"github.com/dantalabs/leadscout/internal/repository"
	"github.com/dantalabs/leadscout/internal/search"
	"github.com/dantalabs/leadscout/internal/service/pipeline"
)

// EnrichHandler exposes the decision-maker enrichment endpoint.
type EnrichHandler struct {
	pipeline LeadPipeline
}

// NewEnrichHandler creates a new handler instance.
func NewEnrichHandler(pipeline LeadPipeline) *EnrichHandler {
	return &EnrichHandler{pipeline: pipeline}
}

// Enrich handles POST /api/enrich requests.
func (h *EnrichHandler) Enrich(c echo.Context) error {
	var req dto.EnrichRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	companyID, err := uuid.Parse(strings.TrimSpace(req.CompanyID))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid companyId")
	}

	contacts, err := h.pipeline.Enrich(c.Request().Context(), companyID, req.CompanyName)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrMissingCredentials):
			return Error(c, http.StatusInternalServerError, "google search credentials are not configured")
		case errors.Is(err, repository.ErrCompanyNotFound):
			return Error(c, http.StatusNotFound, "company not found")
		case errors.Is(err, pipeline.ErrNoResults):
			return SoftFailure(c, "No results found")
		case errors.Is(err, pipeline.ErrNoValidContacts):
			return SoftFailure(c, "Found results but none were valid profiles")
		default:
			return Error(c, http.StatusBadGateway, err.Error())
		}
	}

	return SuccessCount(c, http.StatusOK, contacts, len(contacts))
}
