package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"crewhub/internal/interfaces/http/middleware"
	"crewhub/internal/interfaces/http/routes"

	_ "crewhub/docs"
)

// setupEngine installs the global middleware chain and the operational
// endpoints that sit outside the API route table.
func (c *Container) setupEngine() {
	gin.SetMode(c.cfg.Server.Mode)

	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Metrics())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.ErrorHandler())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	c.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (c *Container) registerRoutes() {
	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:         c.hdlrs.auth,
		RateLimitMiddleware: c.rateLimitMW,
	})

	routes.SetupCompanyRoutes(c.engine, &routes.CompanyRouteConfig{
		CompanyHandler:       c.hdlrs.company,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupSettingRoutes(c.engine, &routes.SettingRouteConfig{
		SettingHandler:       c.hdlrs.setting,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupBranchRoutes(c.engine, &routes.BranchRouteConfig{
		BranchHandler:        c.hdlrs.branch,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupJobRoleRoutes(c.engine, &routes.JobRoleRouteConfig{
		JobRoleHandler:       c.hdlrs.jobRole,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupOnboardingRoutes(c.engine, &routes.OnboardingRouteConfig{
		OnboardingHandler:    c.hdlrs.onboarding,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupEmployeeRoutes(c.engine, &routes.EmployeeRouteConfig{
		EmployeeHandler:      c.hdlrs.employee,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
		RateLimitMiddleware:  c.rateLimitMW,
	})

	routes.SetupLeavePolicyRoutes(c.engine, &routes.LeavePolicyRouteConfig{
		LeavePolicyHandler:   c.hdlrs.leavePolicy,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupPlanRoutes(c.engine, &routes.PlanRouteConfig{
		PlanHandler:          c.hdlrs.plan,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticket,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupTaskRoutes(c.engine, &routes.TaskRouteConfig{
		TaskHandler:          c.hdlrs.task,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})

	routes.SetupDocumentRoutes(c.engine, &routes.DocumentRouteConfig{
		DocumentHandler:      c.hdlrs.document,
		AuthMiddleware:       c.authMW,
		PermissionMiddleware: c.permissionMW,
	})
}
