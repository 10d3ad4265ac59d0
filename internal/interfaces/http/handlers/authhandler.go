package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewhub/internal/application/auth/usecases"
	"crewhub/internal/shared/logger"
	"crewhub/internal/shared/utils"
)

type AuthHandler struct {
	registerUC     RegisterExecutor
	loginUC        LoginExecutor
	refreshTokenUC RefreshTokenExecutor
	logger         logger.Interface
}

func NewAuthHandler(
	registerUC RegisterExecutor,
	loginUC LoginExecutor,
	refreshTokenUC RefreshTokenExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC:     registerUC,
		loginUC:        loginUC,
		refreshTokenUC: refreshTokenUC,
		logger:         logger,
	}
}

type RegisterRequest struct {
	CompanyName    string `json:"companyName" binding:"required,max=200"`
	OwnerFirstName string `json:"ownerFirstName" binding:"required,max=100"`
	OwnerLastName  string `json:"ownerLastName" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type AuthResponse struct {
	UserSID    string        `json:"userId"`
	CompanySID string        `json:"companyId"`
	Role       string        `json:"role,omitempty"`
	Tokens     TokenResponse `json:"tokens"`
}

func tokenResponse(tokens *usecases.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}
}

// Register creates a company with its owner account and signs the owner in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		CompanyName:    req.CompanyName,
		OwnerFirstName: req.OwnerFirstName,
		OwnerLastName:  req.OwnerLastName,
		Email:          req.Email,
		Password:       req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, AuthResponse{
		UserSID:    result.UserSID,
		CompanySID: result.CompanySID,
		Tokens:     tokenResponse(result.Tokens),
	}, "company registered")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", AuthResponse{
		UserSID:    result.UserSID,
		CompanySID: result.CompanySID,
		Role:       result.Role,
		Tokens:     tokenResponse(result.Tokens),
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.refreshTokenUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token refreshed", tokenResponse(tokens))
}
