package http

import (
	"github.com/gin-gonic/gin"
)

// userIDHeader lets a GUI client name its user; the client IP is used otherwise.
const userIDHeader = "X-User-ID"

// processTurnReq binds and validates the turn request body.
func (h *handler) processTurnReq(c *gin.Context) (turnReq, error) {
	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.UserID = c.GetHeader(userIDHeader)
	if req.UserID == "" {
		req.UserID = c.ClientIP()
	}
	return req, req.validate()
}

// processChatLogReq binds the chat log query parameters.
func (h *handler) processChatLogReq(c *gin.Context) (chatLogReq, error) {
	var req chatLogReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
