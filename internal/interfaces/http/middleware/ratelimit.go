package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/ratelimit"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

// RateLimitMiddleware enforces per-IP request limits using a shared
// limiter backend, so limits hold across multiple server instances.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a middleware that throttles requests per client IP under
// the given scope. When the limiter backend is unavailable the request is
// allowed through rather than failing all traffic.
func (m *RateLimitMiddleware) Limit(scope string, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := m.limiter.Allow(key, config)
		if err != nil {
			m.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// LoginLimit throttles authentication attempts more aggressively than
// general API traffic.
func (m *RateLimitMiddleware) LoginLimit() gin.HandlerFunc {
	return m.Limit("login", ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   60,
	})
}

// APILimit applies the default per-IP limit for authenticated API traffic.
func (m *RateLimitMiddleware) APILimit() gin.HandlerFunc {
	return m.Limit("api", ratelimit.RateLimitConfig{
		RequestsPerMinute: 300,
		RequestsPerHour:   10000,
	})
}
