package telegram

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"voice-assistant/internal/assistant"
	"voice-assistant/internal/middleware"
	pkgLog "voice-assistant/pkg/log"
	pkgTelegram "voice-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
	// Wait blocks until every accepted update has been answered.
	Wait()
}

// Options restricts who may drive the assistant from Telegram.
type Options struct {
	// AllowedChats lists chat ids allowed to send turns. Empty allows every chat, but
	// then chats only get conversation: no host actions and no /log.
	AllowedChats []int64
	// Timeout bounds one turn, including waiting for a running turn to finish.
	Timeout time.Duration
}

type handler struct {
	l       pkgLog.Logger
	uc      assistant.UseCase
	bot     pkgTelegram.IBot
	mw      middleware.Middleware
	allowed map[int64]bool
	timeout time.Duration
	wg      sync.WaitGroup
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc assistant.UseCase, bot pkgTelegram.IBot, mw middleware.Middleware, opts Options) Handler {
	h := &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		mw:      mw,
		timeout: opts.Timeout,
	}
	if h.timeout <= 0 {
		h.timeout = defaultTimeout
	}
	if len(opts.AllowedChats) > 0 {
		h.allowed = make(map[int64]bool, len(opts.AllowedChats))
		for _, id := range opts.AllowedChats {
			h.allowed[id] = true
		}
	}
	return h
}
