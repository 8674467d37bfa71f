package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dantalabs/leadscout/internal/config"
	"github.com/dantalabs/leadscout/internal/handler"
	middlewarepkg "github.com/dantalabs/leadscout/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Scan      *handler.ScanHandler
	Enrich    *handler.EnrichHandler
	Draft     *handler.DraftHandler
	Contacts  *handler.ContactsHandler
	Companies *handler.CompaniesHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, map[string]any{"status": "ok"})
	})

	api := e.Group("/api")
	api.POST("/scan", handlers.Scan.Scan, middlewarepkg.ScanRateLimiter(cfg.RateLimitScan))
	api.POST("/enrich", handlers.Enrich.Enrich)
	api.POST("/draft", handlers.Draft.Draft)
	api.POST("/contacts/update-status", handlers.Contacts.UpdateStatus)
	api.GET("/companies", handlers.Companies.List)
	api.GET("/companies/:id/contacts", handlers.Companies.ListContacts)
}
