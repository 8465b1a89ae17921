package conversation

import (
	"context"
	"fmt"
	"strings"

	"voice-assistant/pkg/websearch"
)

// Answer answers query with live data. Currency and weather questions are answered
// from JSON APIs when the query asks nothing else. Otherwise the model receives
// search results, any live data and the current date and time.
func (uc *usecase) Answer(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	live, ok := uc.instantAnswer(ctx, query)
	if ok && !isCompound(query) {
		return live, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, PromptRealtimeSystem, uc.cfg.Username, uc.cfg.AssistantName)
	b.WriteString("\n\n")
	if block := uc.searchBlock(ctx, query); block != "" {
		b.WriteString(block)
		b.WriteString("\n\n")
	}
	if ok {
		b.WriteString(PromptLiveData)
		b.WriteString(live)
		b.WriteString("\n\n")
	}
	b.WriteString(information(uc.now().In(uc.cfg.Location)))

	return uc.complete(ctx, LogPrefixAnswer, b.String(), query, RealtimeTemperature, RealtimeMaxTokens)
}

func (uc *usecase) searchBlock(ctx context.Context, query string) string {
	if uc.searcher == nil {
		return ""
	}
	results, err := uc.searcher.Search(ctx, query, uc.cfg.SearchResults)
	if err != nil {
		uc.l.Warnf(ctx, "%s: searcher.Search: %v", LogPrefixAnswer, err)
		return ""
	}
	return websearch.Format(query, results)
}
