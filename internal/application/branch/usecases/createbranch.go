package usecases

import (
	"context"

	"crewhub/internal/domain/branch"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type CreateBranchCommand struct {
	CompanyID   uint
	Name        string
	Address     string
	CountryCode string
	ManagerID   *uint
}

type CreateBranchUseCase struct {
	branchRepo branch.Repository
	logger     logger.Interface
}

func NewCreateBranchUseCase(branchRepo branch.Repository, logger logger.Interface) *CreateBranchUseCase {
	return &CreateBranchUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

func (uc *CreateBranchUseCase) Execute(ctx context.Context, cmd CreateBranchCommand) (*branch.Branch, error) {
	b, err := branch.NewBranch(cmd.CompanyID, cmd.Name, cmd.Address, cmd.CountryCode, cmd.ManagerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.branchRepo.Save(ctx, b); err != nil {
		uc.logger.Errorw("failed to create branch", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("branch created", "branch_id", b.ID(), "company_id", cmd.CompanyID)
	return b, nil
}
