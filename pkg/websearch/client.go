package websearch

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	DefaultResults = 5
	// Custom Search returns at most 10 items per page.
	maxResults = 10
)

// Client wraps the Google Programmable Search (Custom Search JSON) API.
type Client struct {
	service  *customsearch.Service
	apiKey   string
	engineID string
}

// Ensure Client implements ISearcher interface
var _ ISearcher = (*Client)(nil)

// New creates a search client for the given API key and search engine id (cx).
// Extra options are passed to the underlying service, e.g. option.WithHTTPClient.
// The key is sent with every call since a custom HTTP client bypasses option.WithAPIKey.
func New(ctx context.Context, apiKey, engineID string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("search API key is required")
	}
	if engineID == "" {
		return nil, fmt.Errorf("search engine id is required")
	}

	opts = append([]option.ClientOption{option.WithoutAuthentication()}, opts...)
	svc, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}
	return &Client{service: svc, apiKey: apiKey, engineID: engineID}, nil
}

// Search returns up to n results for query.
func (c *Client) Search(ctx context.Context, query string, n int) ([]Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}
	if n <= 0 {
		n = DefaultResults
	}
	if n > maxResults {
		n = maxResults
	}

	resp, err := c.service.Cse.List().
		Q(query).
		Cx(c.engineID).
		Num(int64(n)).
		Context(ctx).
		Do(googleapi.QueryParameter("key", c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]Result, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: strings.TrimSpace(item.Snippet),
		})
	}
	return results, nil
}

// Format renders results as the block handed to the answering model.
func Format(query string, results []Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The search results for '%s' are:\n[start]\n", query)
	for _, r := range results {
		fmt.Fprintf(&b, "Title: %s\nDescription: %s\n\n", r.Title, r.Snippet)
	}
	b.WriteString("[end]")
	return b.String()
}
