package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type OnboardingRouteConfig struct {
	OnboardingHandler    *handlers.OnboardingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupOnboardingRoutes(engine *gin.Engine, config *OnboardingRouteConfig) {
	perm := config.PermissionMiddleware

	flows := engine.Group("/onboarding")
	flows.Use(config.AuthMiddleware.RequireAuth())
	{
		flows.POST("",
			perm.RequirePermission(permission.ResourceOnboarding, permission.ActionCreate),
			config.OnboardingHandler.Create)
		flows.GET("",
			perm.RequirePermission(permission.ResourceOnboarding, permission.ActionRead),
			config.OnboardingHandler.List)

		flows.GET("/:id",
			perm.RequirePermission(permission.ResourceOnboarding, permission.ActionRead),
			config.OnboardingHandler.Get)
		flows.PUT("/:id",
			perm.RequirePermission(permission.ResourceOnboarding, permission.ActionUpdate),
			config.OnboardingHandler.Update)
		flows.DELETE("/:id",
			perm.RequirePermission(permission.ResourceOnboarding, permission.ActionDelete),
			config.OnboardingHandler.Delete)
	}
}
