package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type LeavePolicyRouteConfig struct {
	LeavePolicyHandler   *handlers.LeavePolicyHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupLeavePolicyRoutes(engine *gin.Engine, config *LeavePolicyRouteConfig) {
	perm := config.PermissionMiddleware

	policies := engine.Group("/leave-policies")
	policies.Use(config.AuthMiddleware.RequireAuth())
	{
		policies.POST("",
			perm.RequirePermission(permission.ResourceLeavePolicy, permission.ActionCreate),
			config.LeavePolicyHandler.Create)
		policies.GET("",
			perm.RequirePermission(permission.ResourceLeavePolicy, permission.ActionRead),
			config.LeavePolicyHandler.List)

		policies.GET("/:id",
			perm.RequirePermission(permission.ResourceLeavePolicy, permission.ActionRead),
			config.LeavePolicyHandler.Get)
		policies.PUT("/:id",
			perm.RequirePermission(permission.ResourceLeavePolicy, permission.ActionUpdate),
			config.LeavePolicyHandler.Update)
		policies.DELETE("/:id",
			perm.RequirePermission(permission.ResourceLeavePolicy, permission.ActionDelete),
			config.LeavePolicyHandler.Delete)
	}
}
