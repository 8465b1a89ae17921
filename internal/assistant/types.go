package assistant

import (
	"voice-assistant/internal/dispatch"
	"voice-assistant/internal/intent"
)

// ProcessInput is one utterance from any channel.
type ProcessInput struct {
	Utterance string
}

// Reply is everything a channel needs to render a finished turn.
type Reply struct {
	TurnID      string
	Utterance   string
	Tasks       []intent.Task
	Results     []dispatch.Result
	StatusLines []string
	Answer      string
	Notices     []string
	// Exit is set when the user ended the session.
	Exit bool
}
