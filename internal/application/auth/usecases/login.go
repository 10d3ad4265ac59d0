package usecases

import (
	"context"
	"strings"

	"crewhub/internal/domain/company"
	"crewhub/internal/domain/user"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserSID    string
	CompanySID string
	Role       string
	Tokens     *TokenPair
}

type LoginUseCase struct {
	userRepo    user.Repository
	companyRepo company.Repository
	hasher      PasswordHasher
	tokens      TokenService
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}
	if !u.Active() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
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

	u.RecordLogin()
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "company_id", u.CompanyID())

	return &LoginResult{
		UserSID:    u.SID(),
		CompanySID: c.SID(),
		Role:       u.Role(),
		Tokens:     pair,
	}, nil
}
