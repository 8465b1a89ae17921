package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/internal/assistant"
	"voice-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	ProcessTurn(c *gin.Context)
	ChatLog(c *gin.Context)
}

// Options controls what API callers may do.
type Options struct {
	// Trusted lets callers run host actions and read the conversation log.
	// Leave it off unless the API is reachable only by the owner.
	Trusted bool
}

type handler struct {
	l       log.Logger
	uc      assistant.UseCase
	trusted bool
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, opts Options) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		trusted: opts.Trusted,
	}
}
