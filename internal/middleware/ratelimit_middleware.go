package middleware

import (
	"net/http"
	"strconv"

	"careconnect-api/internal/redis"
	"careconnect-api/internal/transport/httpdto"
	"careconnect-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware limits auth attempts per client IP. When the
// limiter itself fails (Redis unreachable) the request is allowed
// through so the auth endpoints stay available.
func RateLimitMiddleware(limiter *redis.RateLimiter, l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		result, err := limiter.AllowAuth(c.Request.Context(), clientIP)
		if err != nil {
			if l != nil {
				l.Warnf("rate limit check failed: %s", err)
			}
			c.Next()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.ErrorResponse{Message: "Too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
