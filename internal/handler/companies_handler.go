package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dantalabs/leadscout/internal/dto"
	"github.com/dantalabs/leadscout/internal/repository"
)

// CompaniesHandler exposes dashboard read endpoints.
type CompaniesHandler struct {
	companies repository.CompaniesRepository
	contacts  repository.ContactsRepository
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(companies repository.CompaniesRepository, contacts repository.ContactsRepository) *CompaniesHandler {
	return &CompaniesHandler{companies: companies, contacts: contacts}
}

// List handles GET /api/companies requests.
func (h *CompaniesHandler) List(c echo.Context) error {
	filter := dto.ListFilter{
		Q:       strings.TrimSpace(c.QueryParam("q")),
		Status:  strings.TrimSpace(c.QueryParam("status")),
		Keyword: strings.TrimSpace(c.QueryParam("keyword")),
		Page:    parseIntDefault(c.QueryParam("page"), 1),
		PerPage: parseIntDefault(c.QueryParam("per_page"), 20),
	}

	companies, err := h.companies.List(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list companies")
	}

	return SuccessCount(c, http.StatusOK, companies, len(companies))
}

// ListContacts handles GET /api/companies/:id/contacts requests.
func (h *CompaniesHandler) ListContacts(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	if _, err := h.companies.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to fetch company")
	}

	contacts, err := h.contacts.ListByCompany(c.Request().Context(), id)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list contacts")
	}

	return SuccessCount(c, http.StatusOK, contacts, len(contacts))
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
