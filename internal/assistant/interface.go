package assistant

import (
	"context"

	"voice-assistant/internal/model"
)

// UseCase processes turns. Every channel goes through it, one turn at a time.
type UseCase interface {
	// Process runs one utterance to completion: decide, dispatch, answer and log.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (Reply, error)

	// History returns the latest conversation log entries, oldest first.
	History(ctx context.Context, limit int) ([]model.ChatEntry, error)
}

// Presenter shows the progress and result of a turn.
type Presenter interface {
	Status(ctx context.Context, text string)
	User(ctx context.Context, text string)
	Answer(ctx context.Context, text string)
	Notice(ctx context.Context, text string)
	// Say shows and speaks text.
	Say(ctx context.Context, text string)
}
