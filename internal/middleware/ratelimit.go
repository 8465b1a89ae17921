package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"voice-assistant/pkg/response"
)

const (
	defaultMaxClients = 1000
	defaultIdle       = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client and forgets idle clients.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(cfg Config) *rateLimiter {
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = defaultMaxClients
	}
	if cfg.Idle <= 0 {
		cfg.Idle = defaultIdle
	}
	burst := cfg.PerMinute / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxClients, nil, cfg.Idle),
		rate:     rate.Limit(float64(cfg.PerMinute) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// Allow reports whether key may make another request now. It always allows when
// limiting is disabled.
func (mw Middleware) Allow(key string) bool {
	if mw.limiter == nil {
		return true
	}
	return mw.limiter.allow(key)
}

// RateLimit rejects clients, keyed by IP, that exceed the configured rate.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !mw.Allow(key) {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: %s exceeded the limit", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
