package handlers

import (
	"github.com/gin-gonic/gin"

	"tripboard/internal/http/middleware"
)

// RespondError sends a plain error payload with request_id included.
// Always provides "message" for older dashboard clients.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	})
}
