package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type TaskRouteConfig struct {
	TaskHandler          *handlers.TaskHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTaskRoutes(engine *gin.Engine, config *TaskRouteConfig) {
	perm := config.PermissionMiddleware

	tasks := engine.Group("/tasks")
	tasks.Use(config.AuthMiddleware.RequireAuth())
	{
		tasks.POST("",
			perm.RequirePermission(permission.ResourceTask, permission.ActionCreate),
			config.TaskHandler.Create)
		tasks.GET("",
			perm.RequirePermission(permission.ResourceTask, permission.ActionRead),
			config.TaskHandler.List)

		tasks.GET("/:id",
			perm.RequirePermission(permission.ResourceTask, permission.ActionRead),
			config.TaskHandler.Get)
		tasks.PUT("/:id",
			perm.RequirePermission(permission.ResourceTask, permission.ActionUpdate),
			config.TaskHandler.Update)
		tasks.DELETE("/:id",
			perm.RequirePermission(permission.ResourceTask, permission.ActionDelete),
			config.TaskHandler.Delete)
	}
}
