package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type JobRoleRouteConfig struct {
	JobRoleHandler       *handlers.JobRoleHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupJobRoleRoutes(engine *gin.Engine, config *JobRoleRouteConfig) {
	perm := config.PermissionMiddleware

	jobRoles := engine.Group("/job-roles")
	jobRoles.Use(config.AuthMiddleware.RequireAuth())
	{
		jobRoles.POST("",
			perm.RequirePermission(permission.ResourceJobRole, permission.ActionCreate),
			config.JobRoleHandler.Create)
		jobRoles.GET("",
			perm.RequirePermission(permission.ResourceJobRole, permission.ActionRead),
			config.JobRoleHandler.List)

		jobRoles.POST("/:id/employees",
			perm.RequirePermission(permission.ResourceJobRole, permission.ActionManage),
			config.JobRoleHandler.AssignEmployees)

		jobRoles.PUT("/:id",
			perm.RequirePermission(permission.ResourceJobRole, permission.ActionUpdate),
			config.JobRoleHandler.Update)
		jobRoles.DELETE("/:id",
			perm.RequirePermission(permission.ResourceJobRole, permission.ActionDelete),
			config.JobRoleHandler.Delete)
	}
}
