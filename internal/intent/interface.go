package intent

import "context"

// UseCase turns an utterance into an ordered task list.
type UseCase interface {
	// Decide classifies and parses with a bounded retry. It returns ErrClassifierUnavailable
	// when the caller should use Route instead.
	Decide(ctx context.Context, utterance string) (Decision, error)

	// Direct handles utterances that need no classifier.
	Direct(utterance string) (Decision, bool)

	// Route is the classifier free fallback.
	Route(ctx context.Context, utterance string) Decision

	// Lexicon returns the process wide lexicon.
	Lexicon() *Lexicon
}
