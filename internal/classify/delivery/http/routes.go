package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the classify endpoint onto the /api/classify group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("", h.Classify)
}
