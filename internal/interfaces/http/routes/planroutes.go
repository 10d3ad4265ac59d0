package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type PlanRouteConfig struct {
	PlanHandler          *handlers.PlanHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPlanRoutes registers the plan catalog, the tenant subscription
// view and the billing history. Catalog writes are restricted to
// support agents through the policy table.
func SetupPlanRoutes(engine *gin.Engine, config *PlanRouteConfig) {
	perm := config.PermissionMiddleware

	plans := engine.Group("/plans")
	plans.Use(config.AuthMiddleware.RequireAuth())
	{
		plans.POST("",
			perm.RequirePermission(permission.ResourcePlan, permission.ActionCreate),
			config.PlanHandler.Create)
		plans.GET("",
			perm.RequirePermission(permission.ResourcePlan, permission.ActionRead),
			config.PlanHandler.List)

		plans.POST("/features",
			perm.RequirePermission(permission.ResourcePlan, permission.ActionManage),
			config.PlanHandler.CreateFeature)
		plans.GET("/features",
			perm.RequirePermission(permission.ResourcePlan, permission.ActionRead),
			config.PlanHandler.ListFeatures)

		plans.GET("/:id",
			perm.RequirePermission(permission.ResourcePlan, permission.ActionRead),
			config.PlanHandler.Get)
		plans.PUT("/:id",
			perm.RequirePermission(permission.ResourcePlan, permission.ActionUpdate),
			config.PlanHandler.Update)
	}

	subscription := engine.Group("/subscription")
	subscription.Use(config.AuthMiddleware.RequireAuth())
	{
		subscription.GET("",
			perm.RequirePermission(permission.ResourcePlan, permission.ActionRead),
			config.PlanHandler.GetSubscription)
	}

	billing := engine.Group("/billing")
	billing.Use(config.AuthMiddleware.RequireAuth())
	{
		billing.GET("",
			perm.RequirePermission(permission.ResourceBilling, permission.ActionRead),
			config.PlanHandler.ListBillingHistory)
	}
}
