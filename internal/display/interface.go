package display

import "context"

// Sink shows events to the user.
type Sink interface {
	Publish(ctx context.Context, e Event)
}

// Speaker reads text aloud. It returns false when nothing was spoken.
type Speaker interface {
	Speak(ctx context.Context, text string) bool
}
