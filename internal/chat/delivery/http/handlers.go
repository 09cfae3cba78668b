package http

import (
	"github.com/gin-gonic/gin"

	"fish-classification-website/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Forwards the message to the completion API with the session's retained history as context.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional session id"
// @Success     200 {object} map[string]interface{} "success, response, session_id"
// @Failure     400 {object} map[string]interface{} "missing message"
// @Failure     500 {object} map[string]interface{} "completion or persistence failure"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Respond(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"response":   output.Reply,
		"session_id": output.SessionID,
	})
}

// Clear godoc
// @Summary     Clear chat history
// @Description Empties the session's message log. The backing file is overwritten with an empty snapshot.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body clearReq false "Optional session id"
// @Success     200 {object} map[string]interface{} "success, message"
// @Failure     500 {object} map[string]interface{} "persistence failure"
// @Router      /api/chat/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processClearReq(c)

	if err := h.uc.Clear(ctx, req.sessionID()); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{"message": response.MessageHistoryCleared})
}

// History godoc
// @Summary     Fetch chat history
// @Description Returns the session's retained messages with system-role entries filtered out.
// @Tags        Chat
// @Produce     json
// @Param       session_id query string false "Session id (default: default)"
// @Success     200 {object} map[string]interface{} "success, history, session_id"
// @Failure     500 {object} map[string]interface{} "Internal Server Error"
// @Router      /api/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := h.processHistoryReq(c)

	output, err := h.uc.History(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"history":    newHistoryResp(output),
		"session_id": output.SessionID,
	})
}
