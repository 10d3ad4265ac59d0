package usecases

import (
	"context"

	"crewhub/internal/domain/employee"
	"crewhub/internal/domain/user"
	"crewhub/internal/shared/constants"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type AcceptInviteCommand struct {
	InviteToken string
	Password    string
}

type AcceptInviteResult struct {
	UserID     uint
	UserSID    string
	EmployeeID uint
	CompanyID  uint
}

// AcceptInviteUseCase redeems an invite token: it creates the member
// login and links it to the employee record in one transaction.
type AcceptInviteUseCase struct {
	employeeRepo employee.Repository
	userRepo     user.Repository
	hasher       PasswordHasher
	txManager    TransactionManager
	logger       logger.Interface
}

func NewAcceptInviteUseCase(
	employeeRepo employee.Repository,
	userRepo user.Repository,
	hasher PasswordHasher,
	txManager TransactionManager,
	logger logger.Interface,
) *AcceptInviteUseCase {
	return &AcceptInviteUseCase{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *AcceptInviteUseCase) Execute(ctx context.Context, cmd AcceptInviteCommand) (*AcceptInviteResult, error) {
	if cmd.InviteToken == "" {
		return nil, errors.NewValidationError("invite token is required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	e, err := uc.employeeRepo.GetByInviteToken(ctx, cmd.InviteToken)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("invite not found or already used")
		}
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(e.CompanyID(), e.Email(), hash, constants.RoleMember)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Save(txCtx, u); err != nil {
			return err
		}
		if err := e.AcceptInvite(u.ID()); err != nil {
			return errors.NewConflictError(err.Error())
		}
		return uc.employeeRepo.Update(txCtx, e)
	})
	if err != nil {
		uc.logger.Errorw("failed to accept invite", "error", err, "employee_id", e.ID())
		return nil, err
	}

	uc.logger.Infow("invite accepted", "employee_id", e.ID(), "user_id", u.ID())

	return &AcceptInviteResult{
		UserID:     u.ID(),
		UserSID:    u.SID(),
		EmployeeID: e.ID(),
		CompanyID:  e.CompanyID(),
	}, nil
}
