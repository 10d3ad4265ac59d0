package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/id"
)

// ParseSIDParam parses and validates a Stripe-style prefixed ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "branch_id").
// prefix is the expected SID prefix (e.g., id.PrefixBranch).
// entityName is used in error messages (e.g., "branch", "ticket").
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// CompanyID returns the authenticated tenant's internal ID from the gin context.
func CompanyID(c *gin.Context) uint {
	if v, ok := c.Get("company_id"); ok {
		if companyID, ok := v.(uint); ok {
			return companyID
		}
	}
	return 0
}

// UserID returns the authenticated user's internal ID from the gin context.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if userID, ok := v.(uint); ok {
			return userID
		}
	}
	return 0
}

// UserRole returns the authenticated user's role from the gin context.
func UserRole(c *gin.Context) string {
	if v, ok := c.Get("user_role"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}
