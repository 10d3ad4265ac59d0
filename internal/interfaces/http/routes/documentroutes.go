package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type DocumentRouteConfig struct {
	DocumentHandler      *handlers.DocumentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupDocumentRoutes(engine *gin.Engine, config *DocumentRouteConfig) {
	perm := config.PermissionMiddleware

	documents := engine.Group("/documents")
	documents.Use(config.AuthMiddleware.RequireAuth())
	{
		documents.POST("",
			perm.RequirePermission(permission.ResourceDocument, permission.ActionCreate),
			config.DocumentHandler.Create)
		documents.GET("",
			perm.RequirePermission(permission.ResourceDocument, permission.ActionRead),
			config.DocumentHandler.List)

		documents.GET("/:id",
			perm.RequirePermission(permission.ResourceDocument, permission.ActionRead),
			config.DocumentHandler.Get)
		documents.PUT("/:id",
			perm.RequirePermission(permission.ResourceDocument, permission.ActionUpdate),
			config.DocumentHandler.Update)
		documents.DELETE("/:id",
			perm.RequirePermission(permission.ResourceDocument, permission.ActionDelete),
			config.DocumentHandler.Delete)
	}
}
