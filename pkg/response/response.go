package response

import "github.com/gin-gonic/gin"

// JSON bodies are flat: handlers return the resource itself on success and
// {"error": "..."} on failure, mirroring what the front-end consumes.

// Err writes a JSON error body with the given status.
func Err(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ErrDetails writes a JSON error body with field-level details attached.
func ErrDetails(c *gin.Context, status int, message string, details any) {
	c.JSON(status, gin.H{"error": message, "details": details})
}
