package usecases

import (
	"context"

	"crewhub/internal/domain/branch"
	"crewhub/internal/domain/employee"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type AssignEmployeesCommand struct {
	BranchSID   string
	CompanyID   uint
	EmployeeIDs []uint
}

// AssignEmployeesUseCase adds employees to a branch. Employees from
// other companies are rejected before any row is written.
type AssignEmployeesUseCase struct {
	branchRepo   branch.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewAssignEmployeesUseCase(
	branchRepo branch.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *AssignEmployeesUseCase {
	return &AssignEmployeesUseCase{
		branchRepo:   branchRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *AssignEmployeesUseCase) Execute(ctx context.Context, cmd AssignEmployeesCommand) error {
	if len(cmd.EmployeeIDs) == 0 {
		return errors.NewValidationError("at least one employee ID is required")
	}

	b, err := uc.branchRepo.GetBySID(ctx, cmd.BranchSID)
	if err != nil {
		return err
	}
	if b.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("branch not found")
	}

	for _, employeeID := range cmd.EmployeeIDs {
		e, err := uc.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}
		if e.CompanyID() != cmd.CompanyID {
			return errors.NewNotFoundError("employee not found")
		}
	}

	if err := uc.branchRepo.AssignEmployees(ctx, b.ID(), cmd.EmployeeIDs); err != nil {
		uc.logger.Errorw("failed to assign employees to branch", "error", err, "branch_id", b.ID())
		return err
	}

	uc.logger.Infow("employees assigned to branch", "branch_id", b.ID(), "count", len(cmd.EmployeeIDs))
	return nil
}

type UnassignEmployeesCommand struct {
	BranchSID   string
	CompanyID   uint
	EmployeeIDs []uint
}

type UnassignEmployeesUseCase struct {
	branchRepo branch.Repository
	logger     logger.Interface
}

func NewUnassignEmployeesUseCase(branchRepo branch.Repository, logger logger.Interface) *UnassignEmployeesUseCase {
	return &UnassignEmployeesUseCase{
		branchRepo: branchRepo,
		logger:     logger,
	}
}

func (uc *UnassignEmployeesUseCase) Execute(ctx context.Context, cmd UnassignEmployeesCommand) error {
	if len(cmd.EmployeeIDs) == 0 {
		return errors.NewValidationError("at least one employee ID is required")
	}

	b, err := uc.branchRepo.GetBySID(ctx, cmd.BranchSID)
	if err != nil {
		return err
	}
	if b.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("branch not found")
	}

	if err := uc.branchRepo.UnassignEmployees(ctx, b.ID(), cmd.EmployeeIDs); err != nil {
		uc.logger.Errorw("failed to unassign employees from branch", "error", err, "branch_id", b.ID())
		return err
	}

	uc.logger.Infow("employees unassigned from branch", "branch_id", b.ID(), "count", len(cmd.EmployeeIDs))
	return nil
}
