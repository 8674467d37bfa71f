package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dantalabs/leadscout/internal/dto"
	"github.com/dantalabs/leadscout/internal/entity"
	"github.com/dantalabs/leadscout/internal/repository"
)

// ContactsHandler exposes contact status endpoints.
type ContactsHandler struct {
	contacts repository.ContactsRepository
}

// NewContactsHandler creates a new handler instance.
func NewContactsHandler(contacts repository.ContactsRepository) *ContactsHandler {
	return &ContactsHandler{contacts: contacts}
}

// UpdateStatus handles POST /api/contacts/update-status requests. The only
// accepted transition is NEW to CONTACTED.
func (h *ContactsHandler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	id, err := uuid.Parse(strings.TrimSpace(req.ID))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid contact id")
	}
	if entity.ContactStatus(strings.ToUpper(strings.TrimSpace(req.Status))) != entity.ContactStatusContacted {
		return Error(c, http.StatusBadRequest, "status must be CONTACTED")
	}

	if err := h.contacts.MarkContacted(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrContactNotFound):
			return Error(c, http.StatusNotFound, "contact not found")
		case errors.Is(err, repository.ErrContactAlreadyContacted):
			return Error(c, http.StatusConflict, "contact already contacted")
		default:
			return Error(c, http.StatusInternalServerError, "failed to update contact status")
		}
	}

	return Success(c, http.StatusOK, nil)
}
