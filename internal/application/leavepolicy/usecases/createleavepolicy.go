package usecases

import (
	"context"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type CreateLeavePolicyCommand struct {
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

type CreateLeavePolicyUseCase struct {
	policyRepo leavepolicy.Repository
	logger     logger.Interface
}

func NewCreateLeavePolicyUseCase(policyRepo leavepolicy.Repository, logger logger.Interface) *CreateLeavePolicyUseCase {
	return &CreateLeavePolicyUseCase{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

func (uc *CreateLeavePolicyUseCase) Execute(ctx context.Context, cmd CreateLeavePolicyCommand) (*leavepolicy.LeavePolicy, error) {
	p, err := leavepolicy.NewLeavePolicy(
		cmd.CompanyID,
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

	if err := uc.policyRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to create leave policy", "error", err, "company_id", cmd.CompanyID)
		return nil, err
	}

	uc.logger.Infow("leave policy created", "policy_id", p.ID(), "company_id", cmd.CompanyID)
	return p, nil
}
