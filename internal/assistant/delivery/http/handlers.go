package http

import (
	"github.com/gin-gonic/gin"

	"voice-assistant/pkg/response"
)

// ProcessTurn godoc
// @Summary     Process an utterance
// @Description Runs one assistant turn: classification, task execution and the merged answer.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  false "Caller identity (defaults to client IP)"
// @Param       body      body   turnReq true  "Utterance"
// @Success     200 {object} turnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Assistant busy"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/turns [POST]
func (h *handler) ProcessTurn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := req.toScope()
	sc.Trusted = h.trusted
	reply, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.assistant.delivery.http.ProcessTurn: uc.Process: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newTurnResp(reply))
}

// ChatLog godoc
// @Summary     Conversation log
// @Description Returns the latest conversation log entries, oldest first.
// @Tags        Assistant
// @Produce     json
// @Param       limit query int false "Number of entries (default: 20, max: 200)"
// @Success     200 {object} chatLogResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "API is not trusted"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chatlog [GET]
func (h *handler) ChatLog(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.trusted {
		response.Forbidden(c, errNotTrusted)
		return
	}

	req, err := h.processChatLogReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	entries, err := h.uc.History(ctx, req.limit())
	if err != nil {
		h.l.Errorf(ctx, "internal.assistant.delivery.http.ChatLog: uc.History: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newChatLogResp(entries))
}
