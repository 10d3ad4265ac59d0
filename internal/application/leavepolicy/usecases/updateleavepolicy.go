package usecases

import (
	"context"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateLeavePolicyCommand struct {
	PolicySID        string
	CompanyID        uint
	Name             string
	Description      string
	AccrualSchedule  string
	Paid             bool
	RequiresApproval bool
	AllowNegative    bool
	BalanceRollover  bool
	AutoAddNewHires  bool
	MaxAccrualHours  int
	BranchIDs        []uint
	JobRoleIDs       []uint
	MemberIDs        []uint
}

type UpdateLeavePolicyUseCase struct {
	policyRepo leavepolicy.Repository
	logger     logger.Interface
}

func NewUpdateLeavePolicyUseCase(policyRepo leavepolicy.Repository, logger logger.Interface) *UpdateLeavePolicyUseCase {
	return &UpdateLeavePolicyUseCase{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

func (uc *UpdateLeavePolicyUseCase) Execute(ctx context.Context, cmd UpdateLeavePolicyCommand) (*leavepolicy.LeavePolicy, error) {
	p, err := uc.policyRepo.GetBySID(ctx, cmd.PolicySID)
	if err != nil {
		return nil, err
	}
	if p.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("leave policy not found")
	}

	err = p.Update(
		cmd.Name,
		cmd.Description,
		cmd.AccrualSchedule,
		cmd.Paid,
		cmd.RequiresApproval,
		cmd.AllowNegative,
		cmd.BalanceRollover,
		cmd.AutoAddNewHires,
		cmd.MaxAccrualHours,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := p.ReplaceAttachments(cmd.BranchIDs, cmd.JobRoleIDs, cmd.MemberIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.policyRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update leave policy", "error", err, "policy_id", p.ID())
		return nil, err
	}

	uc.logger.Infow("leave policy updated", "policy_id", p.ID())
	return p, nil
}
