// Package speech captures utterances and reads answers aloud through external commands.
package speech

import "context"

// Listener returns one utterance. An empty string means silence.
type Listener interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker reads text aloud without blocking the caller.
type Speaker interface {
	Speak(ctx context.Context, text string) bool
}
