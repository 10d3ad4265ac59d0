package usecases

import (
	"context"

	"crewhub/internal/domain/employee"
	"crewhub/internal/domain/jobrole"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type AssignJobRoleCommand struct {
	JobRoleSID  string
	CompanyID   uint
	EmployeeIDs []uint
}

// AssignJobRoleUseCase sets the role on each employee's job
// information. Employees outside the company are rejected up front.
type AssignJobRoleUseCase struct {
	jobRoleRepo  jobrole.Repository
	employeeRepo employee.Repository
	logger       logger.Interface
}

func NewAssignJobRoleUseCase(
	jobRoleRepo jobrole.Repository,
	employeeRepo employee.Repository,
	logger logger.Interface,
) *AssignJobRoleUseCase {
	return &AssignJobRoleUseCase{
		jobRoleRepo:  jobRoleRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (uc *AssignJobRoleUseCase) Execute(ctx context.Context, cmd AssignJobRoleCommand) error {
	if len(cmd.EmployeeIDs) == 0 {
		return errors.NewValidationError("at least one employee ID is required")
	}

	r, err := uc.jobRoleRepo.GetBySID(ctx, cmd.JobRoleSID)
	if err != nil {
		return err
	}
	if r.CompanyID() != cmd.CompanyID {
		return errors.NewNotFoundError("job role not found")
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

	if err := uc.jobRoleRepo.AssignToEmployees(ctx, r.ID(), cmd.EmployeeIDs); err != nil {
		uc.logger.Errorw("failed to assign job role", "error", err, "job_role_id", r.ID())
		return err
	}

	uc.logger.Infow("job role assigned", "job_role_id", r.ID(), "count", len(cmd.EmployeeIDs))
	return nil
}
