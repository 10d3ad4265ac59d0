package usecases

import (
	"context"
	"strings"

	"crewhub/internal/domain/company"
	"crewhub/internal/domain/employee"
	"crewhub/internal/domain/user"
	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type RegisterCommand struct {
	CompanyName    string
	OwnerFirstName string
	OwnerLastName  string
	Email          string
	Password       string
}

type RegisterResult struct {
	CompanySID string
	UserSID    string
	Tokens     *TokenPair
}

// RegisterUseCase onboards a new tenant: the company, its owner login,
// and the owner's employee record are created in one transaction.
type RegisterUseCase struct {
	companyRepo  company.Repository
	userRepo     user.Repository
	employeeRepo employee.Repository
	hasher       PasswordHasher
	tokens       TokenService
	txManager    TransactionManager
	logger       logger.Interface
}

func NewRegisterUseCase(
	companyRepo company.Repository,
	userRepo user.Repository,
	employeeRepo employee.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	txManager TransactionManager,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		tokens:       tokens,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	if strings.TrimSpace(cmd.OwnerFirstName) == "" {
		return nil, errors.NewValidationError("owner first name is required")
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.NewConflictError("an account with this email already exists")
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}

	c, err := company.NewCompany(cmd.CompanyName, email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	var u *user.User
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.companyRepo.Save(txCtx, c); err != nil {
			return err
		}

		u, err = user.NewUser(c.ID(), email, hash, constants.RoleOwner)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.userRepo.Save(txCtx, u); err != nil {
			return err
		}

		e, err := employee.NewEmployee(c.ID(), cmd.OwnerFirstName, cmd.OwnerLastName, email)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.employeeRepo.Save(txCtx, e); err != nil {
			return err
		}
		if err := e.AcceptInvite(u.ID()); err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.employeeRepo.Update(txCtx, e)
	})
	if err != nil {
		uc.logger.Errorw("failed to register company", "error", err, "email", email)
		return nil, err
	}

	pair, err := uc.tokens.Generate(u.SID(), c.SID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("company registered", "company_id", c.ID(), "user_id", u.ID())

	return &RegisterResult{
		CompanySID: c.SID(),
		UserSID:    u.SID(),
		Tokens:     pair,
	}, nil
}
