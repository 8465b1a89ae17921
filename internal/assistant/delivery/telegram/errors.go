package telegram

import (
	"context"
	"errors"

	"voice-assistant/internal/assistant"
)

// errorMessage returns the user facing text for a failed turn.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, assistant.ErrEmptyUtterance):
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "The assistant is busy right now. Please try again in a moment."
	default:
		return msgFailed
	}
}
