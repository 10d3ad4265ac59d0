package routes

import (
	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/interfaces/http/handlers"
	"crewhub/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *handlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.POST("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionCreate),
			config.TicketHandler.Create)
		tickets.GET("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.List)

		tickets.POST("/:id/assign",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionManage),
			config.TicketHandler.Assign)
		tickets.PATCH("/:id/status",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionManage),
			config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/messages",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.SendMessage)

		tickets.GET("/:id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.Get)
		tickets.DELETE("/:id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionDelete),
			config.TicketHandler.Delete)
	}
}
