package usecases

import (
	"context"

	"crewhub/internal/domain/employee"
	"crewhub/internal/domain/jobrole"
	"crewhub/internal/shared/errors"
	"crewhub/internal/shared/logger"
)

type UpdateEmployeeCommand struct {
	EmployeeSID     string
	CompanyID       uint
	FirstName       string
	LastName        string
	PhoneNumber     string
	AnnualLeaveDays int
	JobRoleID       *uint
	DetachJobRole   bool
}

type UpdateEmployeeUseCase struct {
	employeeRepo employee.Repository
	jobRoleRepo  jobrole.Repository
	logger       logger.Interface
}

func NewUpdateEmployeeUseCase(
	employeeRepo employee.Repository,
	jobRoleRepo jobrole.Repository,
	logger logger.Interface,
) *UpdateEmployeeUseCase {
	return &UpdateEmployeeUseCase{
		employeeRepo: employeeRepo,
		jobRoleRepo:  jobRoleRepo,
		logger:       logger,
	}
}

func (uc *UpdateEmployeeUseCase) Execute(ctx context.Context, cmd UpdateEmployeeCommand) (*employee.Employee, error) {
	e, err := uc.employeeRepo.GetBySID(ctx, cmd.EmployeeSID)
	if err != nil {
		return nil, err
	}
	if e.CompanyID() != cmd.CompanyID {
		return nil, errors.NewNotFoundError("employee not found")
	}

	if err := e.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.PhoneNumber, cmd.AnnualLeaveDays); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	switch {
	case cmd.DetachJobRole:
		e.DetachJobRole()
	case cmd.JobRoleID != nil:
		r, err := uc.jobRoleRepo.GetByID(ctx, *cmd.JobRoleID)
		if err != nil {
			return nil, err
		}
		if r.CompanyID() != cmd.CompanyID {
			return nil, errors.NewNotFoundError("job role not found")
		}
		if err := e.AssignJobRole(r.ID()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.employeeRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update employee", "error", err, "employee_id", e.ID())
		return nil, err
	}

	uc.logger.Infow("employee updated", "employee_id", e.ID())
	return e, nil
}
