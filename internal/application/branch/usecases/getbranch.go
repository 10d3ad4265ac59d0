package usecases

import (
	"context"

	"crewhub/internal/domain/branch"
	"crewhub/internal/shared/errors"
)

type GetBranchResult struct {
	Branch      *branch.Branch
	EmployeeIDs []uint
}

type GetBranchUseCase struct {
	branchRepo branch.Repository
}

func NewGetBranchUseCase(branchRepo branch.Repository) *GetBranchUseCase {
	return &GetBranchUseCase{branchRepo: branchRepo}
}

func (uc *GetBranchUseCase) Execute(ctx context.Context, branchSID string, companyID uint) (*GetBranchResult, error) {
	b, err := uc.branchRepo.GetBySID(ctx, branchSID)
	if err != nil {
		return nil, err
	}
	if b.CompanyID() != companyID {
		return nil, errors.NewNotFoundError("branch not found")
	}

	employeeIDs, err := uc.branchRepo.GetEmployeeIDs(ctx, b.ID())
	if err != nil {
		return nil, err
	}

	return &GetBranchResult{
		Branch:      b,
		EmployeeIDs: employeeIDs,
	}, nil
}
