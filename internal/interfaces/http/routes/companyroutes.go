package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type CompanyRouteConfig struct {
	CompanyHandler       *handlers.CompanyHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCompanyRoutes(engine *gin.Engine, config *CompanyRouteConfig) {
	company := engine.Group("/company")
	company.Use(config.AuthMiddleware.RequireAuth())
	{
		company.GET("",
			config.PermissionMiddleware.RequirePermission(permission.ResourceCompany, permission.ActionRead),
			config.CompanyHandler.Get)
		company.PUT("",
			config.PermissionMiddleware.RequirePermission(permission.ResourceCompany, permission.ActionUpdate),
			config.CompanyHandler.Update)
		company.POST("/branding",
			config.PermissionMiddleware.RequirePermission(permission.ResourceCompany, permission.ActionUpdate),
			config.CompanyHandler.UploadBranding)
	}
}
