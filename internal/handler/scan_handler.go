package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dantalabs/leadscout/internal/dto"
	"github.com/dantalabs/leadscout/internal/entity"
	"github.com/dantalabs/leadscout/internal/scraper"
	"github.com/dantalabs/leadscout/internal/service/pipeline"
)

// LeadPipeline is the slice of the pipeline service the HTTP layer needs.
type LeadPipeline interface {
	Scan(ctx context.Context, keyword string) ([]entity.Company, error)
	Enrich(ctx context.Context, companyID uuid.UUID, companyName string) ([]entity.Contact, error)
}

// ScanHandler exposes the keyword scan endpoint.
type ScanHandler struct {
	pipeline LeadPipeline
}

// NewScanHandler creates a new handler instance.
func NewScanHandler(pipeline LeadPipeline) *ScanHandler {
	return &ScanHandler{pipeline: pipeline}
}

// Scan handles POST /api/scan requests.
func (h *ScanHandler) Scan(c echo.Context) error {
	var req dto.ScanRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.Keyword = strings.TrimSpace(req.Keyword)
	if req.Keyword == "" {
		return Error(c, http.StatusBadRequest, "keyword is required")
	}

	companies, err := h.pipeline.Scan(c.Request().Context(), req.Keyword)
	if err != nil {
		switch {
		case errors.Is(err, scraper.ErrMissingToken):
			return Error(c, http.StatusInternalServerError, "APIFY_API_TOKEN is not configured")
		case errors.Is(err, pipeline.ErrNoResults):
			return SoftFailure(c, "No results found")
		default:
			return Error(c, http.StatusBadGateway, err.Error())
		}
	}

	return SuccessCount(c, http.StatusOK, companies, len(companies))
}
