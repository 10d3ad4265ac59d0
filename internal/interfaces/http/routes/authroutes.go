package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler         *handlers.AuthHandler
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// SetupAuthRoutes registers the public authentication endpoints. Login
// and register share the tight credential-guessing limit; refresh only
// carries the general API limit.
func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register",
			config.RateLimitMiddleware.LoginLimit(),
			config.AuthHandler.Register)
		auth.POST("/login",
			config.RateLimitMiddleware.LoginLimit(),
			config.AuthHandler.Login)
		auth.POST("/refresh",
			config.RateLimitMiddleware.APILimit(),
			config.AuthHandler.Refresh)
	}
}
