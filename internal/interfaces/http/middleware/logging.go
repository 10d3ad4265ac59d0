package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/id"
	"crewhub/internal/shared/logger"
)

func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"body_size", c.Writer.Size(),
		}

		if requestID, exists := c.Get(constants.ContextKeyRequestID); exists {
			args = append(args, "request_id", requestID)
		}

		if userSID, exists := c.Get(constants.ContextKeyUserSID); exists {
			args = append(args, "user_sid", userSID)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}

// RequestID propagates the X-Request-ID header into the request context,
// generating one when the client did not supply it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = generateRequestID()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func generateRequestID() string {
	return id.MustGenerateWithPrefix("req", id.DefaultLength)
}
