package respond

import (
	"github.com/gin-gonic/gin"

	"careercraft-backend/internal/shared/telemetry"
)

// ErrorResponse is the fixed failure envelope returned by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// Error sends a standardized error response and logs it with request context.
// The optional err populates the "error" field; it is never used to change the
// user-facing message.
func Error(c *gin.Context, status int, message string, err error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	telemetry.Error("http.error", fields)

	resp := ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Detail = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
