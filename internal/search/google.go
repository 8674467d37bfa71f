package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

const maxResults = 8

// ErrMissingCredentials indicates the search API key or engine id is absent.
var ErrMissingCredentials = errors.New("google search credentials are not configured")

// Result is one raw web search hit about a company.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Client looks up decision-maker profiles through the Custom Search API.
type Client struct {
	svc *customsearch.Service
	cx  string
}

// NewClient constructs a search client. Extra options are forwarded to the
// underlying service, which lets tests point it at a local server.
func NewClient(ctx context.Context, apiKey, cx string, opts ...option.ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(cx) == "" {
		return nil, ErrMissingCredentials
	}

	svcOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := customsearch.NewService(ctx, svcOpts...)
	if err != nil {
		return nil, fmt.Errorf("create customsearch service: %w", err)
	}

	return &Client{svc: svc, cx: cx}, nil
}

// FindDecisionMakers queries for leadership profiles of the company on
// LinkedIn. Zero hits is a valid outcome, not an error.
func (c *Client) FindDecisionMakers(ctx context.Context, companyName string) ([]Result, error) {
	query := decisionMakerQuery(companyName)

	resp, err := c.svc.Cse.List().Cx(c.cx).Q(query).Num(maxResults).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("custom search failed: %w", err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}
	return results, nil
}

// decisionMakerQuery keeps the Vietnamese leadership title alongside the
// English ones since most scanned companies are local.
func decisionMakerQuery(companyName string) string {
	return fmt.Sprintf(`%s (CEO OR Founder OR Director OR "Giám đốc" OR Manager) site:linkedin.com`, strings.TrimSpace(companyName))
}
