package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Turns are rate limited per client; reading the log is not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/turns", mw.RateLimit(), h.ProcessTurn)
	rg.GET("/chatlog", h.ChatLog)
}
