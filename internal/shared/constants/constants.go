package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyUserSID    = "user_sid"
	ContextKeyCompanyID  = "company_id"
	ContextKeyCompanySID = "company_sid"
	ContextKeyUserRole   = "user_role"
	ContextKeyRequestID  = "request_id"

	// Roles
	RoleOwner        = "owner"
	RoleAdmin        = "admin"
	RoleMember       = "member"
	RoleSupportAgent = "support_agent"

	// Default sort column for tenant-scoped listings
	DefaultSortBy    = "updated_at"
	DefaultSortOrder = "desc"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
