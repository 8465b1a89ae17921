package websearch

// Result is a single web search hit.
type Result struct {
	Title   string
	Link    string
	Snippet string
}
