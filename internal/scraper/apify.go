package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.apify.com"
	placesActorID  = "compass~crawler-google-places"
)

// ErrMissingToken indicates the Apify credential was not configured.
var ErrMissingToken = errors.New("apify token is not configured")

// Listing is one raw business record returned by the places actor.
type Listing struct {
	Title        string `json:"title"`
	Website      string `json:"website"`
	URL          string `json:"url"`
	CategoryName string `json:"categoryName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
}

// Client runs the Google Places actor synchronously and decodes its dataset.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewClient builds a scraper client. The actor run can take tens of seconds,
// so the default HTTP client carries a generous timeout.
func NewClient(client *http.Client, token string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{client: client, baseURL: defaultBaseURL, token: token}
}

type actorInput struct {
	SearchStringsArray        []string `json:"searchStringsArray"`
	MaxCrawledPlacesPerSearch int      `json:"maxCrawledPlacesPerSearch"`
	Language                  string   `json:"language"`
	MaxImages                 int      `json:"maxImages"`
}

// Search runs one actor search for the keyword and returns up to maxResults
// listings. A successful run with an empty dataset returns a nil slice.
func (c *Client) Search(ctx context.Context, keyword string, maxResults int) ([]Listing, error) {
	if strings.TrimSpace(c.token) == "" {
		return nil, ErrMissingToken
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	body, err := json.Marshal(actorInput{
		SearchStringsArray:        []string{keyword},
		MaxCrawledPlacesPerSearch: maxResults,
		Language:                  "en",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal actor input: %w", err)
	}

	url := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s", c.baseURL, placesActorID, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create actor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("actor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("actor error: %s", extractActorError(resp.Body))
	}

	var items []Listing
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode actor dataset: %w", err)
	}

	if len(items) > maxResults {
		items = items[:maxResults]
	}
	return items, nil
}

func extractActorError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "actor returned an error"
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return string(data)
}
