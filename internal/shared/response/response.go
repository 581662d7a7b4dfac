package response

import (
	"github.com/gin-gonic/gin"
)

// The dashboard client consumes flat payloads ({ message, ... } on writes,
// bare arrays on reads), so responses are emitted as-is rather than wrapped
// in an envelope.

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Error(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, errorBody{
		Message: message,
		Code:    code,
		Details: details,
	})
}
