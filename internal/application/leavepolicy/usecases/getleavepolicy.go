package usecases

import (
	"context"

	"crewhub/internal/domain/leavepolicy"
	"crewhub/internal/shared/errors"
)

type GetLeavePolicyUseCase struct {
	policyRepo leavepolicy.Repository
}

func NewGetLeavePolicyUseCase(policyRepo leavepolicy.Repository) *GetLeavePolicyUseCase {
	return &GetLeavePolicyUseCase{policyRepo: policyRepo}
}

func (uc *GetLeavePolicyUseCase) Execute(ctx context.Context, policySID string, companyID uint) (*leavepolicy.LeavePolicy, error) {
	p, err := uc.policyRepo.GetBySID(ctx, policySID)
	if err != nil {
		return nil, err
	}
	if p.CompanyID() != companyID {
		return nil, errors.NewNotFoundError("leave policy not found")
	}
	return p, nil
}
