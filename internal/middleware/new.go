package middleware

import (
	"time"

	pkgLog "voice-assistant/pkg/log"
)

// Config tunes the per-client limiter. PerMinute <= 0 disables limiting.
type Config struct {
	PerMinute int
	// MaxClients bounds how many client limiters are remembered.
	MaxClients int
	// Idle is how long an unused client limiter is kept.
	Idle time.Duration
}

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.PerMinute > 0 {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
