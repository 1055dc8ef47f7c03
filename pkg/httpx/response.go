// Package httpx holds the JSON envelope shared by every handler.
package httpx

import (
	"log"
	"net/http"

	"dietdiary-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error aborts the request with the status and message derived from err.
// Errors without a known kind are logged and reported as 500.
func Error(c *gin.Context, err error) {
	status := apperror.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("[Server] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Message: apperror.Message(err),
	})
}
