package usecases

import (
	"context"

	"crewhub/internal/domain/company"
	"crewhub/internal/domain/user"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo    user.Repository
	companyRepo company.Repository
	tokens      TokenService
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	tokens TokenService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*TokenPair, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	userSID, err := uc.tokens.ValidateRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
	}

	u, err := uc.userRepo.GetBySID(ctx, userSID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid or expired refresh token")
		}
		return nil, err
	}
	if !u.Active() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	c, err := uc.companyRepo.GetByID(ctx, u.CompanyID())
	if err != nil {
		return nil, err
	}

	pair, err := uc.tokens.Generate(u.SID(), c.SID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	return pair, nil
}
