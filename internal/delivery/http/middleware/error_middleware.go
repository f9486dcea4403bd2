package middleware

import (
	"errors"
	"net/http"

	"new-recruitment-api/internal/delivery/http/response"
	"new-recruitment-api/pkg/apperror"
	"new-recruitment-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// Internal detail stays server-side; only the message crosses
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "path", c.FullPath(), "error", appErr.Err)
				}
				response.Message(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("Unhandled internal error", "path", c.FullPath(), "error", err)
				response.Message(c, http.StatusInternalServerError, "Internal server error")
			}
		}
	}
}
