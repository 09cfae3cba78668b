package http

import (
	"github.com/gin-gonic/gin"

	"fish-classification-website/internal/chat"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errNoMessage
	}
	return req, req.validate()
}

// processClearReq binds the clear request body. A missing or empty body
// falls back to the default session.
func (h *handler) processClearReq(c *gin.Context) clearReq {
	var req clearReq
	_ = c.ShouldBindJSON(&req)
	return req
}

// processHistoryReq resolves the session id query parameter.
func (h *handler) processHistoryReq(c *gin.Context) string {
	return c.DefaultQuery("session_id", chat.DefaultSessionID)
}
