package usecases

import (
	"context"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type DeleteLeavePolicyCommand struct {
	PolicySID string
	CompanyID uint
}

type DeleteLeavePolicyUseCase struct {
	policyRepo leavepolicy.Repository
	logger     logger.Interface
}

func NewDeleteLeavePolicyUseCase(policyRepo leavepolicy.Repository, logger logger.Interface) *DeleteLeavePolicyUseCase {
	return &DeleteLeavePolicyUseCase{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

func (uc *DeleteLeavePolicyUseCase) Execute(ctx context.Context, cmd DeleteLeavePolicyCommand) error {
	p, err := uc.policyRepo.GetBySID(ctx, cmd.PolicySID)
	if err != nil {
		return err
	}
	if p.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("leave policy not found")
	}

	if err := uc.policyRepo.Delete(ctx, p.ID()); err != nil {
		uc.logger.Errorw("failed to delete leave policy", "error", err, "policy_id", p.ID())
		return err
	}

	uc.logger.Infow("leave policy deleted", "policy_id", p.ID())
	return nil
}
