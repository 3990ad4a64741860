// Package wiki fetches article lead sections from the MediaWiki API:
// category membership listings first, then batched intro extracts with
// visible categories. Raw responses cache to disk so an interrupted fetch
// resumes without re-downloading.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Wikipedia edition API endpoints.
const (
	EnglishAPI = "https://en.wikipedia.org/w/api.php"
	SimpleAPI  = "https://simple.wikipedia.org/w/api.php"
)

const (
	// BatchSize is the maximum titles per extract query.
	BatchSize = 20
	// categoryPageSize is the categorymembers page size (API max 500).
	categoryPageSize = 500

	defaultUserAgent = "ReaderCorpusBuilder/1.0 (speed reading training app; https://github.com/cmfunderburk/Reader)"
	defaultDelay     = 250 * time.Millisecond
)

// Page is one fetched article: its intro extract and visible categories.
type Page struct {
	Extract    string   `json:"extract"`
	Categories []string `json:"categories"`
}

// Client queries one MediaWiki endpoint with a polite request delay.
type Client struct {
	apiURL     string
	userAgent  string
	httpClient *http.Client
	delay      time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithDelay sets the pause between consecutive API requests.
func WithDelay(d time.Duration) Option {
	return func(c *Client) { c.delay = d }
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient builds a client for one API endpoint.
func NewClient(apiURL string, opts ...Option) *Client {
	c := &Client{
		apiURL:     apiURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		delay:      defaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type categoryMembersResponse struct {
	Continue struct {
		CMContinue string `json:"cmcontinue"`
	} `json:"continue"`
	Query struct {
		CategoryMembers []struct {
			Title string `json:"title"`
		} `json:"categorymembers"`
	} `json:"query"`
}

// CategoryMembers lists every main-namespace article title in a category
// (non-recursive), following API continuation until exhausted.
func (c *Client) CategoryMembers(ctx context.Context, category string) ([]string, error) {
	titles := make([]string, 0, categoryPageSize)
	cont := ""
	for {
		params := url.Values{
			"action":      {"query"},
			"list":        {"categorymembers"},
			"cmtitle":     {category},
			"cmlimit":     {strconv.Itoa(categoryPageSize)},
			"cmtype":      {"page"},
			"cmnamespace": {"0"},
			"format":      {"json"},
		}
		if cont != "" {
			params.Set("cmcontinue", cont)
		}

		var resp categoryMembersResponse
		if err := c.get(ctx, params, &resp); err != nil {
			return nil, fmt.Errorf("category %s: %w", category, err)
		}
		for _, member := range resp.Query.CategoryMembers {
			titles = append(titles, member.Title)
		}

		if resp.Continue.CMContinue == "" {
			return titles, nil
		}
		cont = resp.Continue.CMContinue
		if err := c.pause(ctx); err != nil {
			return nil, err
		}
	}
}

type extractsResponse struct {
	Query struct {
		Pages map[string]struct {
			Title      string `json:"title"`
			Extract    string `json:"extract"`
			Categories []struct {
				Title string `json:"title"`
			} `json:"categories"`
		} `json:"pages"`
	} `json:"query"`
}

// Extracts fetches intro extracts and visible categories for up to BatchSize
// titles in one request. Missing or invalid pages are dropped; so are pages
// with empty extracts.
func (c *Client) Extracts(ctx context.Context, titles []string) (map[string]Page, error) {
	if len(titles) > BatchSize {
		return nil, fmt.Errorf("extracts batch of %d exceeds limit %d", len(titles), BatchSize)
	}
	params := url.Values{
		"action":      {"query"},
		"titles":      {strings.Join(titles, "|")},
		"prop":        {"extracts|categories"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"clshow":      {"!hidden"},
		"cllimit":     {"max"},
		"format":      {"json"},
	}

	var resp extractsResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, err
	}

	results := make(map[string]Page, len(resp.Query.Pages))
	for pageID, page := range resp.Query.Pages {
		if id, err := strconv.Atoi(pageID); err != nil || id < 0 {
			continue
		}
		if page.Extract == "" {
			continue
		}
		categories := make([]string, 0, len(page.Categories))
		for _, cat := range page.Categories {
			categories = append(categories, strings.TrimPrefix(cat.Title, "Category:"))
		}
		results[page.Title] = Page{Extract: page.Extract, Categories: categories}
	}
	return results, nil
}

// Pause waits the configured inter-request delay, honoring cancellation.
func (c *Client) Pause(ctx context.Context) error {
	return c.pause(ctx)
}

func (c *Client) pause(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", c.apiURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode api response: %w", err)
	}
	return nil
}
