package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingHandler       *handlers.SettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSettingRoutes registers one GET/PUT pair per settings aggregate.
func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	canRead := config.PermissionMiddleware.RequirePermission(permission.ResourceSetting, permission.ActionRead)
	canUpdate := config.PermissionMiddleware.RequirePermission(permission.ResourceSetting, permission.ActionUpdate)

	settings := engine.Group("/settings")
	settings.Use(config.AuthMiddleware.RequireAuth())
	{
		settings.GET("/activity-tracking", canRead, config.SettingHandler.GetActivityTracking)
		settings.PUT("/activity-tracking", canUpdate, config.SettingHandler.UpsertActivityTracking)

		settings.GET("/break-compliance", canRead, config.SettingHandler.GetBreakCompliance)
		settings.PUT("/break-compliance", canUpdate, config.SettingHandler.UpsertBreakCompliance)

		settings.GET("/notifications", canRead, config.SettingHandler.GetNotification)
		settings.PUT("/notifications", canUpdate, config.SettingHandler.UpsertNotification)

		settings.GET("/rota-rules", canRead, config.SettingHandler.GetRotaRules)
		settings.PUT("/rota-rules", canUpdate, config.SettingHandler.UpsertRotaRules)

		settings.GET("/screen-time", canRead, config.SettingHandler.GetScreenTime)
		settings.PUT("/screen-time", canUpdate, config.SettingHandler.UpsertScreenTime)

		settings.GET("/shifts", canRead, config.SettingHandler.GetShift)
		settings.PUT("/shifts", canUpdate, config.SettingHandler.UpsertShift)
	}
}
