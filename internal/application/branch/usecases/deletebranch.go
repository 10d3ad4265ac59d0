package usecases

import (
	"context"

	"crewhub/internal/domain/branch"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type DeleteBranchCommand struct {
	BranchSID string
	CompanyID uint
}

type DeleteBranchUseCase struct {
	branchRepo branch.Repository
	logger     logger.Interface
}

func NewDeleteBranchUseCase(branchRepo branch.Repository, logger logger.Interface) *DeleteBranchUseCase {
	return &DeleteBranchUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

func (uc *DeleteBranchUseCase) Execute(ctx context.Context, cmd DeleteBranchCommand) error {
	b, err := uc.branchRepo.GetBySID(ctx, cmd.BranchSID)
	if err != nil {
		return err
	}
	if b.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("branch not found")
	}

	if err := uc.branchRepo.Delete(ctx, b.ID()); err != nil {
		uc.logger.Errorw("failed to delete branch", "error", err, "branch_id", b.ID())
		return err
	}

	uc.logger.Infow("branch deleted", "branch_id", b.ID())
	return nil
}
