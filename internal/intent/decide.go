package intent

import (
	"context"
	"strings"
)

// Decide runs classify then parse in a loop bounded by maxRetries classifier calls.
// Empty results and outputs still carrying UndecidedMarker are retried; when the bound
// is hit the decision is a single general task wrapping the utterance.
func (uc *usecase) Decide(ctx context.Context, utterance string) (Decision, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return Decision{}, nil
	}
	if uc.classifier == nil {
		return Decision{}, ErrClassifierUnavailable
	}

	key := cacheKey(utterance)
	if tasks, ok := uc.cache.Get(key); ok {
		return Decision{Tasks: append([]Task(nil), tasks...), Cached: true}, nil
	}

	var raw string
	for attempt := 1; attempt <= uc.maxRetries; attempt++ {
		cls, err := uc.classifier.Classify(ctx, utterance)
		if err != nil {
			uc.l.Warnf(ctx, "%s: attempt %d: %v", LogPrefixDecide, attempt, err)
			return Decision{Attempts: attempt}, err
		}
		raw = cls.Raw

		tasks := uc.lex.Parse(cls.Raw)
		if cls.RateLimited {
			if len(tasks) == 0 {
				tasks = []Task{{Kind: KindGeneral, Argument: utterance}}
			}
			return Decision{
				Tasks:       tasks,
				Raw:         raw,
				Attempts:    attempt,
				RateLimited: true,
				Notice:      NoticeRateLimited,
			}, nil
		}

		if len(tasks) > 0 && !strings.Contains(cls.Raw, UndecidedMarker) {
			uc.cache.Add(key, tasks)
			return Decision{Tasks: tasks, Raw: raw, Attempts: attempt}, nil
		}

		uc.l.Infof(ctx, "%s: %s (attempt %d/%d, raw=%q)", LogPrefixDecide, ErrMsgEmptyResponse, attempt, uc.maxRetries, raw)
	}

	uc.l.Warnf(ctx, "%s: %s", LogPrefixDecide, ErrMsgRetryExhausted)
	return Decision{
		Tasks:     []Task{{Kind: KindGeneral, Argument: utterance}},
		Raw:       raw,
		Attempts:  uc.maxRetries,
		Exhausted: true,
	}, nil
}

// Direct wraps Lexicon.Direct into a Decision.
func (uc *usecase) Direct(utterance string) (Decision, bool) {
	tasks, ok := uc.lex.Direct(utterance)
	if !ok {
		return Decision{}, false
	}
	return Decision{Tasks: tasks, Direct: true}, true
}

// Route wraps Lexicon.Route.
func (uc *usecase) Route(ctx context.Context, utterance string) Decision {
	d := uc.lex.Route(utterance)
	uc.l.Infof(ctx, "%s: fallback routed %d task(s)", LogPrefixRoute, len(d.Tasks))
	return d
}
