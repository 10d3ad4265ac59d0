package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crewhub/internal/domain/user"
	"crewhub/internal/infrastructure/auth"
	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and loads the authenticated user
// into the request context. Both the short IDs from the token claims and
// the numeric database IDs are set so downstream handlers can use either.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.VerifyAccess(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetBySID(c.Request.Context(), claims.UserSID)
		if err != nil || u == nil {
			m.logger.Warnw("authenticated user not found", "user_sid", claims.UserSID, "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if !u.Active() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account is deactivated")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserSID, u.SID())
		c.Set(constants.ContextKeyCompanyID, u.CompanyID())
		c.Set(constants.ContextKeyCompanySID, claims.CompanySID)
		c.Set(constants.ContextKeyUserRole, u.Role())

		c.Next()
	}
}
