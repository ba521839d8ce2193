package utils

import "github.com/gin-gonic/gin"

// JSONMessage writes the {msg} body used for confirmations and errors alike.
func JSONMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"msg": msg})
}

func JSONError(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"msg": msg})
}

func JSONErrorDetails(c *gin.Context, code int, msg string, details any) {
	c.AbortWithStatusJSON(code, gin.H{"msg": msg, "details": details})
}
