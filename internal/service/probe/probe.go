package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout = 5 * time.Second
	userAgent      = "Mozilla/5.0 (compatible; DantaBot/1.0)"

	// maxBodyBytes caps how much markup is scanned for signatures.
	maxBodyBytes = 1 << 20
)

// TechSignals holds the technical fingerprints derived from a website's markup.
type TechSignals struct {
	IsWordPress bool
	CRMSystem   *string
}

var wordpressMarkers = []string{"wp-content", "wp-includes"}

// crmSignatures are checked in order; the first vendor with a matching marker wins.
var crmSignatures = []struct {
	Vendor  string
	Markers []string
}{
	{Vendor: "HubSpot", Markers: []string{"js.hs-scripts.com", "hubspot"}},
	{Vendor: "Salesforce", Markers: []string{"salesforce", "pardot"}},
	{Vendor: "Zoho CRM", Markers: []string{"zoho"}},
	{Vendor: "Bitrix24", Markers: []string{"bitrix24"}},
}

// HTTPClient abstracts HTTP requests so tests can substitute a transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Prober fetches a candidate website and fingerprints its tech stack.
// Probing is best-effort: every failure degrades to empty signals so a dead
// website can never abort the scan that discovered it.
type Prober struct {
	client  HTTPClient
	timeout time.Duration
}

// Option configures optional dependencies.
type Option func(*Prober)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPClient) Option {
	return func(p *Prober) {
		if client != nil {
			p.client = client
		}
	}
}

// WithTimeout overrides the per-probe request bound.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// New builds a prober with sensible defaults.
func New(opts ...Option) *Prober {
	p := &Prober{
		client:  &http.Client{Timeout: defaultTimeout},
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DetectTechStack issues a single bounded GET against the website and matches
// its markup against the signature table. An empty URL short-circuits without
// a network call; any network or HTTP failure returns empty signals.
func (p *Prober) DetectTechStack(ctx context.Context, websiteURL string) TechSignals {
	websiteURL = strings.TrimSpace(websiteURL)
	if websiteURL == "" {
		return TechSignals{}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, websiteURL, nil)
	if err != nil {
		return TechSignals{}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return TechSignals{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return TechSignals{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return TechSignals{}
	}

	return matchSignatures(strings.ToLower(string(body)))
}

func matchSignatures(markup string) TechSignals {
	var signals TechSignals

	for _, marker := range wordpressMarkers {
		if strings.Contains(markup, marker) {
			signals.IsWordPress = true
			break
		}
	}

	for _, sig := range crmSignatures {
		for _, marker := range sig.Markers {
			if strings.Contains(markup, marker) {
				vendor := sig.Vendor
				signals.CRMSystem = &vendor
				return signals
			}
		}
	}

	return signals
}
