package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dantalabs/leadscout/internal/ai"
	"github.com/dantalabs/leadscout/internal/entity"
	"github.com/dantalabs/leadscout/internal/search"
)

const (
	maxSnippets = 8
	maxContacts = 5

	fallbackName     = "Unknown Contact"
	fallbackPosition = "Potential Contact"
	defaultLanguage  = "Vietnamese"
)

// Extractor turns raw web-search snippets about a company into canonical
// contact records. Stage one asks the oracle for structured people; stage two
// synthesizes a single low-confidence contact when structured extraction
// produced nothing but raw results existed.
type Extractor struct {
	oracle           ai.Completer
	fallbackLanguage string
}

// Option configures the extractor.
type Option func(*Extractor)

// WithFallbackLanguage overrides the language assigned to fallback contacts.
func WithFallbackLanguage(language string) Option {
	return func(e *Extractor) {
		if strings.TrimSpace(language) != "" {
			e.fallbackLanguage = language
		}
	}
}

// New builds an extractor backed by the given completion capability.
func New(oracle ai.Completer, opts ...Option) *Extractor {
	e := &Extractor{oracle: oracle, fallbackLanguage: defaultLanguage}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract produces 0-5 deduplicated contacts for the company. An empty result
// list yields no contacts; a non-empty list yields at least one thanks to the
// fallback path.
func (e *Extractor) Extract(ctx context.Context, companyName string, results []search.Result) []entity.Contact {
	if len(results) == 0 {
		return nil
	}
	if len(results) > maxSnippets {
		results = results[:maxSnippets]
	}

	contacts := e.structuredExtraction(ctx, companyName, results)
	if len(contacts) == 0 {
		contacts = append(contacts, e.fallbackContact(results[0]))
	}
	return contacts
}

// rawContact mirrors the JSON schema requested from the oracle.
type rawContact struct {
	FullName       string `json:"full_name"`
	Position       string `json:"position"`
	Seniority      string `json:"seniority"`
	Language       string `json:"language"`
	YearsInCompany string `json:"years_in_company"`
	LinkedInURL    string `json:"linkedin_url"`
	TwitterURL     string `json:"twitter_url"`
	FacebookURL    string `json:"facebook_url"`
}

func (e *Extractor) structuredExtraction(ctx context.Context, companyName string, results []search.Result) []entity.Contact {
	if e.oracle == nil {
		return nil
	}

	text, err := e.oracle.Complete(ctx, buildExtractionPrompt(companyName, results))
	if err != nil {
		return nil
	}

	candidates, ok := parseContactArray(text)
	if !ok {
		return nil
	}

	var (
		contacts []entity.Contact
		seen     = make(map[string]struct{})
	)
	for _, candidate := range candidates {
		name := strings.TrimSpace(candidate.FullName)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		seniority := canonicalSeniority(candidate.Seniority)
		contacts = append(contacts, entity.Contact{
			FullName:               name,
			Position:               defaultString(candidate.Position, fallbackPosition),
			Seniority:              seniority,
			Language:               defaultString(candidate.Language, "Unknown"),
			YearsInCompany:         defaultString(candidate.YearsInCompany, "Unknown"),
			LinkedInURL:            urlOrNil(candidate.LinkedInURL),
			TwitterURL:             urlOrNil(candidate.TwitterURL),
			FacebookURL:            urlOrNil(candidate.FacebookURL),
			IsPrimaryDecisionMaker: seniority.IsPrimaryDecisionMaker(),
			Status:                 entity.ContactStatusNew,
		})
		if len(contacts) == maxContacts {
			break
		}
	}
	return contacts
}

// parseContactArray decodes the oracle output as a JSON array, first raw and
// then with markdown fences stripped. Both failing is a recoverable condition.
func parseContactArray(text string) ([]rawContact, bool) {
	var candidates []rawContact
	if err := json.Unmarshal([]byte(text), &candidates); err == nil {
		return candidates, true
	}
	if err := json.Unmarshal([]byte(ai.StripCodeFences(text)), &candidates); err == nil {
		return candidates, true
	}
	return nil, false
}

// fallbackContact synthesizes exactly one low-confidence contact from the
// first raw result so the pipeline never reports total failure when some raw
// signal existed.
func (e *Extractor) fallbackContact(first search.Result) entity.Contact {
	name := fallbackName
	if title := strings.TrimSpace(first.Title); title != "" {
		if candidate := strings.TrimSpace(strings.SplitN(title, " - ", 2)[0]); candidate != "" {
			name = candidate
		}
	}

	contact := entity.Contact{
		FullName:       name,
		Position:       fallbackPosition,
		Seniority:      entity.SeniorityUnknown,
		Language:       e.fallbackLanguage,
		YearsInCompany: "Unknown",
		Status:         entity.ContactStatusNew,
	}
	if strings.Contains(first.Link, "linkedin.com") {
		link := first.Link
		contact.LinkedInURL = &link
	}
	return contact
}

// canonicalSeniority maps free-form oracle labels onto the seniority enum.
// "Founder" is folded into C-Level: a founder is a primary decision maker
// under any reading of the outreach policy.
func canonicalSeniority(raw string) entity.Seniority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "c-level", "clevel", "c level", "cxo":
		return entity.SeniorityCLevel
	case "founder", "co-founder", "cofounder":
		return entity.SeniorityCLevel
	case "vp", "vice president":
		return entity.SeniorityVP
	case "director":
		return entity.SeniorityDirector
	case "manager":
		return entity.SeniorityManager
	case "individual contributor", "ic":
		return entity.SeniorityIC
	default:
		return entity.SeniorityUnknown
	}
}

func buildExtractionPrompt(companyName string, results []search.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a B2B sales research assistant. Below are web search results about the company %q.\n\n", companyName)

	for i, result := range results {
		fmt.Fprintf(&b, "RESULT %d:\nTitle: %s\nSnippet: %s\nLink: %s\n\n", i+1, result.Title, result.Snippet, result.Link)
	}

	fmt.Fprintf(&b, `TASK:
Extract up to %d decision makers of %q from the results above.

RULES:
- Only include people actually mentioned in the results. Never invent a person.
- For missing categorical fields you may make a clearly reasonable guess from context instead of dropping the person.
- "seniority" must be exactly one of: "C-Level", "VP", "Director", "Manager", "Individual Contributor".
- "language" is the person's likely primary working language.
- "years_in_company" is the inferred tenure, or "Unknown".
- Social URLs must come from the result links; omit them when absent.

OUTPUT FORMAT (raw JSON array only, no markdown):
[{"full_name": "...", "position": "...", "seniority": "...", "language": "...", "years_in_company": "...", "linkedin_url": "...", "twitter_url": "...", "facebook_url": "..."}]
`, maxContacts, companyName)

	return b.String()
}

func defaultString(value, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return fallback
}

func urlOrNil(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
