package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"voice-assistant/internal/assistant"
	"voice-assistant/pkg/response"
)

var (
	errUtteranceTooLong = errors.New("utterance is too long")
	errAssistantBusy    = errors.New("assistant is busy with another turn")
	errNotTrusted       = errors.New("the conversation log is not shared over this API")
)

// writeError translates use case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyUtterance):
		response.Error(c, err, nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		response.Unavailable(c, errAssistantBusy)
	default:
		response.InternalError(c, err)
	}
}
