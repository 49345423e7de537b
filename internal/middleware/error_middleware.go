package middleware

import (
	"careconnect-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors attached to the context by handlers. The
// handlers own the response body, so nothing is written here.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		if l != nil {
			l.Errorf("request error: %s", c.Errors.Last().Err.Error())
		}
	}
}
