package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with a success flag so browser clients can branch
// without inspecting status codes.

func Success(c *gin.Context, status int, data gin.H) {
	out := gin.H{"success": true}
	for k, v := range data {
		out[k] = v
	}
	c.JSON(status, out)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// FieldErrors reports a validation failure with per-field messages.
func FieldErrors(c *gin.Context, status int, message string, fields map[string]string) {
	c.JSON(status, gin.H{"success": false, "error": message, "fieldErrors": fields})
}

// RateLimited reports a 429 with the rateLimited marker clients key on.
func RateLimited(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message, "rateLimited": true})
}
