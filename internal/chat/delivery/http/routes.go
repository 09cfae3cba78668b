package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoints onto the /api/chat group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Chat)
	rg.POST("/clear", h.Clear)
	rg.GET("/history", h.History)
}
