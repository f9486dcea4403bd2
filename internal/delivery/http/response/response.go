package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the confirmation/error shape used across the API.
type Body struct {
	Message string `json:"message"`
}

// Message sends a {"message": ...} body with the given status code.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, Body{Message: message})
}
