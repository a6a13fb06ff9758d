package response

import (
	"leap-forms-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
	Error     string            `json:"error,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response; fields is nil unless the request failed validation
func Error(c *gin.Context, code int, message string, fields map[string]string) {
	c.JSON(code, Response{
		Success:   false,
		Error:     message,
		Errors:    fields,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
