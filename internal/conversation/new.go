package conversation

import (
	"time"

	"voice-assistant/internal/chatlog"
	"voice-assistant/pkg/instant"
	"voice-assistant/pkg/llmprovider"
	pkgLog "voice-assistant/pkg/log"
	"voice-assistant/pkg/websearch"
)

type usecase struct {
	cfg      Config
	llm      llmprovider.Generator
	history  chatlog.Repository
	searcher websearch.ISearcher
	live     instant.IClient
	now      func() time.Time
	l        pkgLog.Logger
}

// Ensure usecase implements UseCase interface
var _ UseCase = (*usecase)(nil)

// New creates the conversation use case. history, searcher and live may be nil.
func New(
	cfg Config,
	llm llmprovider.Generator,
	history chatlog.Repository,
	searcher websearch.ISearcher,
	live instant.IClient,
	l pkgLog.Logger,
) UseCase {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.SearchResults <= 0 {
		cfg.SearchResults = DefaultSearchResults
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &usecase{
		cfg:      cfg,
		llm:      llm,
		history:  history,
		searcher: searcher,
		live:     live,
		now:      time.Now,
		l:        l,
	}
}
