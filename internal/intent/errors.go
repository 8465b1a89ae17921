package intent

import "errors"

var (
	// ErrClassifierUnavailable means no classifier could be reached; route heuristically instead.
	ErrClassifierUnavailable = errors.New("intent classifier unavailable")

	// ErrUnknownPrefix is returned when the configured lexicon names a prefix we cannot dispatch.
	ErrUnknownPrefix = errors.New("unknown lexicon prefix")
)
