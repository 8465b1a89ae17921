package websearch

import "context"

// ISearcher returns the top web results for a query.
type ISearcher interface {
	Search(ctx context.Context, query string, n int) ([]Result, error)
}
