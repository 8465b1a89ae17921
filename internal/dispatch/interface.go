package dispatch

import (
	"context"

	"voice-assistant/internal/intent"
	"voice-assistant/internal/model"
)

// UseCase executes the non-conversational tasks of one turn.
type UseCase interface {
	// Dispatch runs tasks and returns results aligned 1:1 with tasks.
	// Failures are reported in the results, never returned.
	// Only local senders can end the session, and only senders that MayAct run actions.
	Dispatch(ctx context.Context, sc model.Scope, utterance string, tasks []intent.Task) Outcome
}

// Output receives user visible lines produced while dispatching.
type Output interface {
	Say(ctx context.Context, text string)
}

// Terminator ends the session after the farewell.
type Terminator func()
