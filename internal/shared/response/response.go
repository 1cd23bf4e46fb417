package response

import (
	"github.com/gin-gonic/gin"
)

// Message is the error envelope used across the API. Every failure,
// validation or infrastructure, renders as {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

// JSON writes a success payload as-is (created records, lists, tokens).
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// WithMessage writes {"message": msg} with the given status code.
func WithMessage(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, Message{Message: msg})
}

// Common error responses
func BadRequest(c *gin.Context, msg string) {
	WithMessage(c, 400, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	WithMessage(c, 401, msg)
}

func NotFound(c *gin.Context, msg string) {
	WithMessage(c, 404, msg)
}

func InternalServerError(c *gin.Context, msg string) {
	WithMessage(c, 500, msg)
}
