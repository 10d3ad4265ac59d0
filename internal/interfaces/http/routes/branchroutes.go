package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type BranchRouteConfig struct {
	BranchHandler        *handlers.BranchHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupBranchRoutes(engine *gin.Engine, config *BranchRouteConfig) {
	perm := config.PermissionMiddleware

	branches := engine.Group("/branches")
	branches.Use(config.AuthMiddleware.RequireAuth())
	{
		branches.POST("",
			perm.RequirePermission(permission.ResourceBranch, permission.ActionCreate),
			config.BranchHandler.Create)
		branches.GET("",
			perm.RequirePermission(permission.ResourceBranch, permission.ActionRead),
			config.BranchHandler.List)

		branches.POST("/:id/employees",
			perm.RequirePermission(permission.ResourceBranch, permission.ActionManage),
			config.BranchHandler.AssignEmployees)
		branches.DELETE("/:id/employees",
			perm.RequirePermission(permission.ResourceBranch, permission.ActionManage),
			config.BranchHandler.UnassignEmployees)

		branches.GET("/:id",
			perm.RequirePermission(permission.ResourceBranch, permission.ActionRead),
			config.BranchHandler.Get)
		branches.PUT("/:id",
			perm.RequirePermission(permission.ResourceBranch, permission.ActionUpdate),
			config.BranchHandler.Update)
		branches.DELETE("/:id",
			perm.RequirePermission(permission.ResourceBranch, permission.ActionDelete),
			config.BranchHandler.Delete)
	}
}
