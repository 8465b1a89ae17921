package intent

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-assistant/pkg/log"
)

// Options configures the intent use case. Zero values take package defaults.
type Options struct {
	MaxRetries int
	CacheSize  int
	CacheTTL   time.Duration
}

type usecase struct {
	lex        *Lexicon
	classifier Classifier
	l          log.Logger
	maxRetries int
	cache      *expirable.LRU[string, []Task]
}

// Ensure usecase implements UseCase interface
var _ UseCase = (*usecase)(nil)

// New creates the intent use case. classifier may be nil, in which case Decide always
// reports ErrClassifierUnavailable.
func New(lex *Lexicon, classifier Classifier, l log.Logger, opts Options) UseCase {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &usecase{
		lex:        lex,
		classifier: classifier,
		l:          l,
		maxRetries: opts.MaxRetries,
		cache:      expirable.NewLRU[string, []Task](opts.CacheSize, nil, opts.CacheTTL),
	}
}

func (uc *usecase) Lexicon() *Lexicon {
	return uc.lex
}

func cacheKey(utterance string) string {
	return strings.Join(strings.Fields(strings.ToLower(utterance)), " ")
}
