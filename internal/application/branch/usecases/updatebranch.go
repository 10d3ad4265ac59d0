package usecases

import (
	"context"

	"crewhub/internal/domain/branch"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateBranchCommand struct {
	BranchSID   string
	CompanyID   uint
	Name        string
	Address     string
	CountryCode string
	ManagerID   *uint
}

type UpdateBranchUseCase struct {
	branchRepo branch.Repository
	logger     logger.Interface
}

func NewUpdateBranchUseCase(branchRepo branch.Repository, logger logger.Interface) *UpdateBranchUseCase {
	return &UpdateBranchUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

func (uc *UpdateBranchUseCase) Execute(ctx context.Context, cmd UpdateBranchCommand) (*branch.Branch, error) {
	b, err := uc.branchRepo.GetBySID(ctx, cmd.BranchSID)
	if err != nil {
		return nil, err
	}
	if b.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("branch not found")
	}

	if err := b.Update(cmd.Name, cmd.Address, cmd.CountryCode, cmd.ManagerID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.branchRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to update branch", "error", err, "branch_id", b.ID())
		return nil, err
	}

	uc.logger.Infow("branch updated", "branch_id", b.ID())
	return b, nil
}
