package utils

import "github.com/gin-gonic/gin"

func JSONMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func JSONValidationError(c *gin.Context, code int, message string, details []FieldError) {
	c.JSON(code, gin.H{"message": message, "errors": details})
}
