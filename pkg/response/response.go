package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the payload fields merged next to "success": true.
// The site's front-end expects a flat envelope, not a nested data object.
func OK(c *gin.Context, data gin.H) {
	payload := gin.H{"success": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// Error sends a 400 envelope for missing or malformed request input.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// InternalError sends a 500 envelope carrying the failure description.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// NotFound sends the generic 404 envelope.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": MessageNotFound})
}

// ServerError sends the generic 500 envelope used by the recovery handler.
// Unlike InternalError it never leaks the underlying failure.
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": MessageServerError})
}
