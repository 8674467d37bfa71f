package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dantalabs/leadscout/internal/ai"
	"github.com/dantalabs/leadscout/internal/config"
	"github.com/dantalabs/leadscout/internal/database"
	"github.com/dantalabs/leadscout/internal/handler"
	middlewarepkg "github.com/dantalabs/leadscout/internal/middleware"
	"github.com/dantalabs/leadscout/internal/repository"
	"github.com/dantalabs/leadscout/internal/router"
	"github.com/dantalabs/leadscout/internal/scraper"
	"github.com/dantalabs/leadscout/internal/search"
	"github.com/dantalabs/leadscout/internal/service/draft"
	"github.com/dantalabs/leadscout/internal/service/extract"
	"github.com/dantalabs/leadscout/internal/service/pipeline"
	"github.com/dantalabs/leadscout/internal/service/probe"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	companiesRepo := repository.NewPGXCompaniesRepository(pool)
	contactsRepo := repository.NewPGXContactsRepository(pool)

	scraperClient := scraper.NewClient(nil, cfg.ApifyToken)
	prober := probe.New(probe.WithTimeout(cfg.ProbeTimeout))

	// Search and AI collaborators are optional at startup: endpoints that need
	// them report a configuration error instead of the process refusing to boot.
	var searcher pipeline.Searcher
	if searchClient, err := search.NewClient(ctx, cfg.GoogleSearchAPIKey, cfg.GoogleSearchCX); err == nil {
		searcher = searchClient
	} else {
		log.Printf("google search disabled: %v", err)
	}

	var oracle ai.Completer
	if gemini, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel); err == nil {
		oracle = gemini
	} else {
		log.Printf("gemini disabled: %v", err)
	}

	var extractor pipeline.ContactExtractor
	var drafts handler.DraftGenerator
	if oracle != nil {
		extractor = extract.New(oracle, extract.WithFallbackLanguage(cfg.FallbackLanguage))
		drafts = draft.NewService(oracle)
	}

	leadPipeline := pipeline.NewService(pipeline.Deps{
		Scraper:     scraperClient,
		Searcher:    searcher,
		Extractor:   extractor,
		Prober:      prober,
		Companies:   companiesRepo,
		Contacts:    contactsRepo,
		ScanLimit:   cfg.ScanResultLimit,
		PhoneRegion: cfg.DefaultPhoneRegion,
	})

	handlers := router.Handlers{
		Scan:      handler.NewScanHandler(leadPipeline),
		Enrich:    handler.NewEnrichHandler(leadPipeline),
		Draft:     handler.NewDraftHandler(drafts),
		Contacts:  handler.NewContactsHandler(contactsRepo),
		Companies: handler.NewCompaniesHandler(companiesRepo, contactsRepo),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
