package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type EmployeeRouteConfig struct {
	EmployeeHandler      *handlers.EmployeeHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

// SetupEmployeeRoutes registers the employee endpoints. Accepting an
// invite happens before the employee has credentials, so that route is
// public and rate limited like login.
func SetupEmployeeRoutes(engine *gin.Engine, config *EmployeeRouteConfig) {
	perm := config.PermissionMiddleware

	engine.POST("/employees/accept-invite",
		config.RateLimitMiddleware.LoginLimit(),
		config.EmployeeHandler.AcceptInvite)

	employees := engine.Group("/employees")
	employees.Use(config.AuthMiddleware.RequireAuth())
	{
		employees.POST("",
			perm.RequirePermission(permission.ResourceEmployee, permission.ActionCreate),
			config.EmployeeHandler.Create)
		employees.GET("",
			perm.RequirePermission(permission.ResourceEmployee, permission.ActionRead),
			config.EmployeeHandler.List)

		employees.PUT("/pay-rates",
			perm.RequirePermission(permission.ResourceEmployee, permission.ActionManage),
			config.EmployeeHandler.UpdatePayRates)
		employees.POST("/:id/invite",
			perm.RequirePermission(permission.ResourceEmployee, permission.ActionManage),
			config.EmployeeHandler.Invite)

		employees.GET("/:id",
			perm.RequirePermission(permission.ResourceEmployee, permission.ActionRead),
			config.EmployeeHandler.Get)
		employees.PUT("/:id",
			perm.RequirePermission(permission.ResourceEmployee, permission.ActionUpdate),
			config.EmployeeHandler.Update)
		employees.DELETE("/:id",
			perm.RequirePermission(permission.ResourceEmployee, permission.ActionDelete),
			config.EmployeeHandler.Delete)
	}
}
