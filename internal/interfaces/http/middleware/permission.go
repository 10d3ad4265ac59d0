package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/infrastructure/permission"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the authenticated user's role against the
// policy store for the given resource and action. Must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.UserRole(c)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole allows the request only when the authenticated user holds
// one of the given roles. Must run after RequireAuth.
func (m *PermissionMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := utils.UserRole(c)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		for _, required := range roles {
			if role == required {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role check failed", "role", role, "required_roles", roles)
		utils.ErrorResponse(c, http.StatusForbidden, fmt.Sprintf("required role: %v", roles))
		c.Abort()
	}
}
