package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dantalabs/leadscout/internal/entity"
	"github.com/dantalabs/leadscout/internal/repository"
	"github.com/dantalabs/leadscout/internal/scraper"
	"github.com/dantalabs/leadscout/internal/search"
	"github.com/dantalabs/leadscout/internal/service/probe"
	"github.com/dantalabs/leadscout/internal/service/scoring"
)

// probeConcurrency bounds how many candidate websites are fetched in parallel
// during one scan.
const probeConcurrency = 4

var (
	// ErrNoResults signals the upstream source returned zero records. It is a
	// soft failure: nothing was persisted and nothing went wrong technically.
	ErrNoResults = errors.New("no results found")
	// ErrNoValidContacts signals enrichment found raw material but could not
	// derive a single usable contact from it.
	ErrNoValidContacts = errors.New("no valid contacts extracted")
)

// Scraper finds raw business listings for a keyword.
type Scraper interface {
	Search(ctx context.Context, keyword string, maxResults int) ([]scraper.Listing, error)
}

// Searcher finds raw web results about a company's leadership.
type Searcher interface {
	FindDecisionMakers(ctx context.Context, companyName string) ([]search.Result, error)
}

// ContactExtractor turns raw search results into contact records.
type ContactExtractor interface {
	Extract(ctx context.Context, companyName string, results []search.Result) []entity.Contact
}

// TechProber fingerprints a website's tech stack.
type TechProber interface {
	DetectTechStack(ctx context.Context, websiteURL string) probe.TechSignals
}

// Deps bundles the collaborators for the lead pipeline. Scraper, Companies and
// Contacts are required; the rest default to the production implementations.
type Deps struct {
	Scraper   Scraper
	Searcher  Searcher
	Extractor ContactExtractor
	Prober    TechProber
	Estimator scoring.PerformanceEstimator
	Companies repository.CompaniesRepository
	Contacts  repository.ContactsRepository

	ScanLimit   int
	PhoneRegion string
}

// Service orchestrates the scan and enrich flows end to end.
type Service struct {
	scraper   Scraper
	searcher  Searcher
	extractor ContactExtractor
	prober    TechProber
	estimator scoring.PerformanceEstimator
	companies repository.CompaniesRepository
	contacts  repository.ContactsRepository

	scanLimit   int
	phoneRegion string
}

// NewService wires the pipeline and fills in defaults for optional deps.
func NewService(deps Deps) *Service {
	s := &Service{
		scraper:     deps.Scraper,
		searcher:    deps.Searcher,
		extractor:   deps.Extractor,
		prober:      deps.Prober,
		estimator:   deps.Estimator,
		companies:   deps.Companies,
		contacts:    deps.Contacts,
		scanLimit:   deps.ScanLimit,
		phoneRegion: deps.PhoneRegion,
	}
	if s.prober == nil {
		s.prober = probe.New()
	}
	if s.estimator == nil {
		s.estimator = scoring.NewRandomEstimator(nil)
	}
	if s.scanLimit <= 0 {
		s.scanLimit = 5
	}
	if s.phoneRegion == "" {
		s.phoneRegion = "VN"
	}
	return s
}

// Scan discovers businesses for the keyword, fingerprints and qualifies each
// one, and persists the batch. Every discovered listing is persisted exactly
// once regardless of how its individual probe went.
func (s *Service) Scan(ctx context.Context, keyword string) ([]entity.Company, error) {
	listings, err := s.scraper.Search(ctx, keyword, s.scanLimit)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", keyword, err)
	}

	listings = dropUnnamed(listings)
	if len(listings) == 0 {
		return nil, ErrNoResults
	}

	companies := make([]entity.Company, len(listings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)
	for i, listing := range listings {
		g.Go(func() error {
			companies[i] = s.evaluateListing(gctx, keyword, listing)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stored, err := s.companies.InsertBatch(ctx, companies)
	if err != nil {
		return nil, fmt.Errorf("persist scan batch: %w", err)
	}
	return stored, nil
}

// evaluateListing runs the per-listing stage of a scan: normalize, probe,
// score, qualify. It never fails; a dead website just yields empty signals.
func (s *Service) evaluateListing(ctx context.Context, keyword string, listing scraper.Listing) entity.Company {
	company := normalizeListing(keyword, s.phoneRegion, listing)

	var website string
	if company.WebsiteURL != nil {
		website = *company.WebsiteURL
	}

	signals := s.prober.DetectTechStack(ctx, website)
	company.IsWordPress = signals.IsWordPress
	company.CRMSystem = signals.CRMSystem

	verdict := scoring.Qualify(website != "", company.HasSSL, s.estimator.Estimate(website, company.HasSSL))
	company.PageSpeedScore = &verdict.Score
	if verdict.Qualified {
		company.Status = entity.CompanyStatusQualified
	} else {
		company.Status = entity.CompanyStatusDisqualified
		reason := verdict.Reason
		company.DisqualifyReason = &reason
	}

	return company
}

// Enrich looks up decision makers for one company and persists the new ones.
// When the caller did not supply the company name it is resolved from storage.
func (s *Service) Enrich(ctx context.Context, companyID uuid.UUID, companyName string) ([]entity.Contact, error) {
	if s.searcher == nil || s.extractor == nil {
		return nil, search.ErrMissingCredentials
	}

	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		company, err := s.companies.GetByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		companyName = company.Name
	}

	results, err := s.searcher.FindDecisionMakers(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("enrich %q: %w", companyName, err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	contacts := s.extractor.Extract(ctx, companyName, results)
	if len(contacts) == 0 {
		return nil, ErrNoValidContacts
	}

	stored, err := s.contacts.InsertBatch(ctx, companyID, contacts)
	if err != nil {
		return nil, fmt.Errorf("persist contacts: %w", err)
	}
	return stored, nil
}

func dropUnnamed(listings []scraper.Listing) []scraper.Listing {
	kept := listings[:0]
	for _, listing := range listings {
		if strings.TrimSpace(listing.Title) != "" {
			kept = append(kept, listing)
		}
	}
	return kept
}
