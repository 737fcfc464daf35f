package commons

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body shape shared by every API response.
type Envelope = gin.H

func Success(c *gin.Context, status int, message string, data gin.H) {
	body := Envelope{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{"success": false, "message": message})
}
