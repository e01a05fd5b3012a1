// Package response holds the JSON body shapes shared by every handler.
package response

import "github.com/gin-gonic/gin"

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// FieldErrors reports per-field validation failures, keyed by the request
// field name.
func FieldErrors(c *gin.Context, status int, fields map[string]string) {
	c.JSON(status, gin.H{"errors": fields})
}
